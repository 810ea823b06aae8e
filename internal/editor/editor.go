// Package editor lets the user compose a question in $VISUAL or $EDITOR.
package editor

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ComposeQuestion creates the text presented to the editor.
func ComposeQuestion(agentTitle, question string) string {
	var b bytes.Buffer
	b.WriteString("# Ask the " + agentTitle + "\n")
	b.WriteString("# Lines starting with '#' are ignored. Save and quit to send; leave empty to cancel.\n")
	if question != "" {
		if !strings.HasSuffix(question, "\n") {
			question += "\n"
		}
		b.WriteString(question)
	}
	return b.String()
}

// ParseQuestion drops comment lines and surrounding blank space.
func ParseQuestion(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// PreferredEditor finds a suitable editor from env or common defaults.
func PreferredEditor() (string, error) {
	if v := os.Getenv("VISUAL"); v != "" {
		return v, nil
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e, nil
	}
	for _, cand := range []string{"nvim", "vim", "vi", "nano"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no editor found; set $EDITOR or $VISUAL")
}

// QuestionPath returns the scratch file used for composing a question.
func QuestionPath() (string, error) {
	const name = "question.blockfmt.md"
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, "blockfmt", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "blockfmt", name), nil
}

func writeFile0600(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, fs.FileMode(0o600))
}

// OpenAt opens the editor at path with initial content and returns final bytes and whether it changed.
func OpenAt(path string, initial []byte) (final []byte, changed bool, err error) {
	if err := writeFile0600(path, initial); err != nil {
		return nil, false, err
	}
	// Honor VISUAL/EDITOR including flags by running via a shell wrapper.
	ed := os.Getenv("VISUAL")
	if ed == "" {
		ed = os.Getenv("EDITOR")
	}
	var cmd *exec.Cmd
	if strings.TrimSpace(ed) != "" {
		cmd = exec.Command("sh", "-c", "$EDITORCMD \"$FILEPATH\"")
		cmd.Env = append(os.Environ(), "EDITORCMD="+ed, "FILEPATH="+path)
	} else {
		prog, err := PreferredEditor()
		if err != nil {
			return nil, false, err
		}
		cmd = exec.Command(prog, path)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, err
	}
	out, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return out, !bytes.Equal(out, initial), nil
}

// EditQuestion opens the editor seeded with question and returns the
// edited question with comments removed. The scratch file is removed.
func EditQuestion(agentTitle, question string) (string, error) {
	path, err := QuestionPath()
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	out, _, err := OpenAt(path, []byte(ComposeQuestion(agentTitle, question)))
	if err != nil {
		return "", err
	}
	return ParseQuestion(string(out)), nil
}
