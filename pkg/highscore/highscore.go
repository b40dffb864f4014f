// Package highscore persists the best score as a plain text integer.
package highscore

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultPath = "high_score.txt"

// Load reads the score stored at path. A missing or empty file holds 0.
func Load(path string) (int, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, nil
	} else if err != nil {
		return 0, errors.Wrapf(err, "read high score %s", path)
	}

	s := strings.TrimSpace(string(data))
	if s == "" {
		return 0, nil
	}

	score, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse high score %s", path)
	}
	if score < 0 {
		return 0, errors.Errorf("parse high score %s: negative score %d", path, score)
	}

	return score, nil
}

func Save(path string, score int) error {
	if score < 0 {
		return errors.Errorf("save high score %s: negative score %d", path, score)
	}

	err := os.WriteFile(path, []byte(strconv.Itoa(score)), 0644)
	return errors.Wrapf(err, "write high score %s", path)
}

// Update stores score when it beats the one at path and returns the best
// of the two.
func Update(path string, score int) (best int, improved bool, err error) {
	best, err = Load(path)
	if err != nil {
		return 0, false, err
	}

	if score <= best {
		return best, false, nil
	}

	if err := Save(path, score); err != nil {
		return best, false, err
	}
	return score, true, nil
}
