// Package roster provides the name tables and builds the teams and
// players the simulation runs on.
package roster

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/Dosada05/league-simulator/models"
)

//go:embed data/*.txt
var defaultData embed.FS

var (
	ErrUnknownRegion = errors.New("unknown region section")
	ErrEmptyTable    = errors.New("name table is empty")
)

// Names is the data every generated team and player draws from.
type Names struct {
	Teams      map[models.Region][]string
	FirstNames []string
	LastNames  []string
	Gamertags  []string
}

// DefaultNames loads the tables bundled with the binary.
func DefaultNames() (*Names, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}
	return LoadNames(sub)
}

// LoadNames reads team_names.txt, first_names.txt, last_names.txt and
// gamertags.txt from fsys.
func LoadNames(fsys fs.FS) (*Names, error) {
	n := &Names{}

	f, err := fsys.Open("team_names.txt")
	if err != nil {
		return nil, err
	}
	n.Teams, err = ParseTeamNames(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("team_names.txt: %w", err)
	}

	for file, dst := range map[string]*[]string{
		"first_names.txt": &n.FirstNames,
		"last_names.txt":  &n.LastNames,
		"gamertags.txt":   &n.Gamertags,
	} {
		f, err := fsys.Open(file)
		if err != nil {
			return nil, err
		}
		*dst, err = ParseList(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if len(*dst) == 0 {
			return nil, fmt.Errorf("%s: %w", file, ErrEmptyTable)
		}
	}
	return n, nil
}

// ParseTeamNames reads "[Region]" sections, each followed by one team
// name per line. Blank lines are skipped; lines before the first
// section are ignored.
func ParseTeamNames(r io.Reader) (map[models.Region][]string, error) {
	out := make(map[models.Region][]string)
	var current models.Region
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			region, ok := models.ParseRegion(line[1 : len(line)-1])
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, line)
			}
			current = region
			if _, seen := out[region]; !seen {
				out[region] = []string{}
			}
		case current != "":
			out[current] = append(out[current], line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyTable
	}
	return out, nil
}

// ParseList returns the non-blank lines of r, skipping section headers.
func ParseList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
