package backup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ayoisaiah/doze/internal/models"
)

// Header is the first line of every backup.
const Header = "id,start,stop,rating,comment"

const fieldCount = 5

// byteOrderMark is added to the start of the file by some editors.
const byteOrderMark = "\ufeff"

var commentEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	"\n", `\n`,
	"\r", `\r`,
)

// Encode writes sessions in backup format: a header line followed by one
// line per session with the fields id, start and stop (epoch milliseconds),
// rating and comment. Backslashes, commas and line breaks in the comment are
// escaped with a backslash so that each record occupies exactly one line.
func Encode(w io.Writer, sessions []models.Session) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}

	for i := range sessions {
		s := &sessions[i]

		_, err := fmt.Fprintf(
			bw,
			"%d,%d,%d,%d,%s\n",
			s.ID,
			s.Start,
			s.Stop,
			s.Rating,
			commentEscaper.Replace(s.Comment),
		)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode reads a backup produced by Encode. The header must be the first
// line and every line must end with a newline, so an empty or truncated file
// is rejected. Every record is validated and the first malformed one aborts
// the whole decode. Blank lines and CRLF line endings are tolerated.
func Decode(r io.Reader) ([]models.Session, error) {
	br := bufio.NewReader(r)

	var (
		sessions []models.Session
		lineNum  int
	)

	seen := make(map[int64]struct{})

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		if line == "" && errors.Is(err, io.EOF) {
			break
		}

		lineNum++

		if errors.Is(err, io.EOF) {
			return nil, ErrParse.Fmt(lineNum).Wrap(errUnterminated)
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if lineNum == 1 {
			if strings.TrimPrefix(line, byteOrderMark) != Header {
				return nil, ErrParse.Fmt(lineNum).Wrap(errMissingHeader)
			}

			continue
		}

		if line == "" {
			continue
		}

		sess, perr := parseRecord(line)
		if perr != nil {
			return nil, ErrParse.Fmt(lineNum).Wrap(perr)
		}

		if _, dup := seen[sess.ID]; dup {
			return nil, ErrParse.Fmt(lineNum).Wrap(errDuplicateID)
		}

		seen[sess.ID] = struct{}{}

		sessions = append(sessions, sess)
	}

	if lineNum == 0 {
		return nil, ErrParse.Fmt(1).Wrap(errEmpty)
	}

	return sessions, nil
}

func parseRecord(line string) (models.Session, error) {
	fields := strings.SplitN(line, ",", fieldCount)
	if len(fields) != fieldCount {
		return models.Session{}, errFieldCount
	}

	var (
		sess models.Session
		err  error
	)

	sess.ID, err = strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return sess, fmt.Errorf("id: %w", err)
	}

	if sess.ID <= 0 {
		return sess, errNonPositiveID
	}

	sess.Start, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return sess, fmt.Errorf("start: %w", err)
	}

	sess.Stop, err = strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return sess, fmt.Errorf("stop: %w", err)
	}

	sess.Rating, err = strconv.Atoi(fields[3])
	if err != nil {
		return sess, fmt.Errorf("rating: %w", err)
	}

	sess.Comment, err = unescape(fields[4])
	if err != nil {
		return sess, err
	}

	if err := sess.Validate(); err != nil {
		return sess, err
	}

	return sess, nil
}

func unescape(s string) (string, error) {
	if !strings.ContainsAny(s, `\,`) {
		return s, nil
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == ',' {
			return "", errUnescapedComma
		}

		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		i++
		if i == len(s) {
			return "", errBadEscape
		}

		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case ',':
			b.WriteByte(',')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", errBadEscape
		}
	}

	return b.String(), nil
}
