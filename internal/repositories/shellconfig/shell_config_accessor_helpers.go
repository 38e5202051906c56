package shellconfig

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func isRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func getAliasesFromFile(filePath string) (map[string]string, error) {
	aliases := make(map[string]string)
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return aliases, nil
		}
		return nil, fmt.Errorf("failed to open profile %s: %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name, command, isAlias := parseAliasLineFromString(scanner.Text())
		if isAlias {
			aliases[name] = command
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning profile %s: %w", filePath, err)
	}
	return aliases, nil
}

// parseAliasLineFromString accepts `alias name=value` with optional matching
// single or double quotes around value. An empty name or value still counts
// as long as the `=` is present.
func parseAliasLineFromString(line string) (name string, command string, isAlias bool) {
	trimmedLine := strings.TrimSpace(line)

	if strings.HasPrefix(trimmedLine, "#") {
		return "", "", false
	}
	if !strings.HasPrefix(trimmedLine, "alias ") {
		return "", "", false
	}

	content := strings.TrimPrefix(trimmedLine, "alias ")
	parts := strings.SplitN(content, "=", 2)
	if len(parts) < 2 {
		return "", "", false
	}

	name = strings.TrimSpace(parts[0])
	commandValue := strings.TrimSpace(parts[1])

	command = commandValue
	if len(commandValue) >= 2 {
		first := commandValue[0]
		last := commandValue[len(commandValue)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			command = commandValue[1 : len(commandValue)-1]
		}
	}
	return name, command, true
}

// toUserFriendlyPath shortens paths under homeDir to the ~/ form.
func toUserFriendlyPath(absPath, homeDir string) string {
	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	rest := strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator))
	if rest == absPath {
		return absPath
	}
	return filepath.Join("~", rest)
}

// endsWithNewline reports whether f is empty or its last byte is a newline.
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}
