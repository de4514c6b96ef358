package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// The fixed allow-list of wallpaper file patterns. Matching is case-sensitive,
// so e.g. "photo.JPG" is not picked up.
var wallpaperPatterns = []glob.Glob{
	glob.MustCompile("*.jpg"),
	glob.MustCompile("*.jpeg"),
	glob.MustCompile("*.png"),
	glob.MustCompile("*.webp"),
	glob.MustCompile("*.gif"),
	glob.MustCompile("*.bmp"),
}

func matchesWallpaperPattern(name string) bool {
	for _, pattern := range wallpaperPatterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}

// Returns the sorted list of wallpaper files in the given directory.
//
// Only the directory itself is scanned, subdirectories are skipped. A missing
// or unreadable directory is treated as zero results, not an error.
func listWallpapers(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Cannot read wallpaper directory %s: %v", dir, err)
		return nil
	}

	var wallpapers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesWallpaperPattern(entry.Name()) {
			wallpapers = append(wallpapers, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(wallpapers)
	return wallpapers
}
