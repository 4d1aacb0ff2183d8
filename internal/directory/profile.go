package directory

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether email looks like an address
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// FormatInterests splits an interests string into display items, keeping the
// original casing
func FormatInterests(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(piece); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DepartmentAbbreviation shortens a department name: initials for multi-word
// names, the first three letters otherwise
func DepartmentAbbreviation(department string) string {
	words := strings.Fields(department)
	switch len(words) {
	case 0:
		return ""
	case 1:
		r := []rune(words[0])
		if len(r) > 3 {
			r = r[:3]
		}
		return strings.ToUpper(string(r))
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(string([]rune(w)[0])))
	}
	return b.String()
}

// ProfileColor derives a stable, not-too-dark hex colour from a name
func ProfileColor(name string) string {
	sum := md5.Sum([]byte(name))
	h := hex.EncodeToString(sum[:])

	channel := func(i int) int64 {
		v, _ := strconv.ParseInt(h[i:i+2], 16, 64)
		return v%200 + 55
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(0), channel(2), channel(4))
}
