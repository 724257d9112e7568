package bootstrap

import (
	"errors"
	"os"
	"strings"
)

// Substitute replaces every non-overlapping occurrence of old with repl in the
// file at path and writes it back in full. If old does not occur, the file is
// left untouched and changed is false. Read failures never cause a write.
func Substitute(path, old, repl string) (changed bool, err error) {
	if old == "" {
		return false, errors.New("substitute: empty search text")
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	content := string(data)
	if !strings.Contains(content, old) {
		return false, nil
	}

	content = strings.ReplaceAll(content, old, repl)
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}
