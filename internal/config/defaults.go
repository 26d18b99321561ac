package config

const (
	IconStyleEmoji = "emoji"
	IconStyleNerd  = "nerd"
)

func defaultIcons() IconsConfig {
	extensions := map[string]string{}
	add := func(icon string, exts ...string) {
		for _, ext := range exts {
			extensions[ext] = icon
		}
	}
	add("🦀", "rs")
	add("⚙️", "toml", "cfg", "conf", "ini", "config")
	add("📝", "md", "markdown")
	add("📋", "json", "yaml", "yml")
	add("🟨", "js", "mjs", "cjs", "jsx")
	add("🔷", "ts", "tsx", "mts", "cts")
	add("🐍", "py", "pyi", "pyc")
	add("🐹", "go")
	add("🔒", "lock")
	add("💻", "sh", "bash", "zsh", "fish")
	add("🖼️", "png", "jpg", "jpeg", "gif", "svg", "ico", "webp")
	add("🎬", "mp4", "mkv", "avi", "mov", "webm")
	add("🎵", "mp3", "wav", "flac", "ogg", "m4a")
	add("📦", "zip", "tar", "gz", "bz2", "xz", "7z", "rar")
	add("🌐", "html", "htm")
	add("🎨", "css", "scss", "sass", "less")
	add("☕", "java", "jar", "class")
	add("🔧", "c", "h", "cpp", "cc", "cxx", "hpp", "hxx")
	add("🗄️", "sql", "db", "sqlite", "sqlite3")

	return IconsConfig{
		Style:      IconStyleEmoji,
		Directory:  "📁",
		Symlink:    "🔗",
		File:       "📄",
		Executable: "📄",
		Extensions: extensions,
		Filenames: map[string]string{
			"cargo.toml":     "🦀",
			"cargo.lock":     "🦀",
			"go.mod":         "🐹",
			"go.sum":         "🐹",
			"makefile":       "🔨",
			"gnumakefile":    "🔨",
			"dockerfile":     "🐳",
			"containerfile":  "🐳",
			"license":        "📜",
			"license.md":     "📜",
			"license.txt":    "📜",
			"readme":         "📖",
			"readme.md":      "📖",
			"readme.txt":     "📖",
			".gitignore":     "🙈",
			".gitattributes": "🙈",
			".gitmodules":    "🙈",
			".git":           "📦",
			".env":           "⚙️",
			".envrc":         "⚙️",
		},
	}
}

func defaultColors() ColorsConfig {
	return ColorsConfig{
		Directory:    "blue",
		Symlink:      "cyan",
		Executable:   "green",
		File:         "white",
		GitModified:  "red",
		GitStaged:    "green",
		GitUntracked: "yellow",
	}
}

func defaultGit() GitConfig {
	return GitConfig{
		Modified:  "●",
		Staged:    "◐",
		Untracked: "?",
		Ignored:   "◌",
	}
}

func defaultLog() LogConfig {
	return LogConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}
