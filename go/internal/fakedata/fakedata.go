// Package fakedata produces randomized but valid values for league API fixtures.
//
// A Generator is created explicitly and handed to the fixtures, so two tests never share
// a random source unless they are given the same one.
package fakedata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/Pallinder/go-randomdata"
	"github.com/mcdev12/leaguefixture/go/internal/models"
)

const (
	upperLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	MaxLeagueNameLength  = 50
	MaxDescriptionLength = 500
	MaxTeamNameLength    = 50
	MinTagLength         = 2
	MaxTagLength         = 5
)

// Generator is the source of random values used by fixtures
type Generator interface {
	Slug() string
	Text(maxChars int) string
	GameType() models.GameType
	IntBetween(min, max int) int
	TeamName() string
	TeamTag() string
	Email() string
	Password() string
}

// RandomData draws words from go-randomdata and every choice from its own *rand.Rand
type RandomData struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed, or with the current time when seed is 0
func New(seed int64) *RandomData {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomData{rng: rand.New(rand.NewSource(seed))}
}

// Slug returns a lower-case, dash separated name such as "quiet-river-042137"
func (r *RandomData) Slug() string {
	slug := fmt.Sprintf("%s-%s-%06d",
		slugWord(randomdata.Adjective()),
		slugWord(randomdata.Noun()),
		r.rng.Intn(1000000))
	return truncate(slug, MaxLeagueNameLength)
}

// Text returns prose of at most maxChars characters, cut on a word boundary
func (r *RandomData) Text(maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	var b strings.Builder
	for b.Len() < maxChars {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(randomdata.Paragraph())
	}
	text := b.String()
	if len([]rune(text)) <= maxChars {
		return text
	}
	cut := truncate(text, maxChars)
	i := strings.LastIndexByte(cut, ' ')
	if i <= 0 {
		return cut
	}
	return strings.TrimRightFunc(cut[:i], func(c rune) bool { return unicode.IsPunct(c) || unicode.IsSpace(c) }) + "."
}

// GameType picks uniformly from the closed set of game identifiers
func (r *RandomData) GameType() models.GameType {
	games := models.ValidGameTypes()
	return games[r.rng.Intn(len(games))]
}

// IntBetween returns an integer in [min, max]
func (r *RandomData) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

func (r *RandomData) TeamName() string {
	name := fmt.Sprintf("%s %s %d",
		titleWord(randomdata.Adjective()),
		titleWord(randomdata.Noun()),
		r.rng.Intn(1000))
	return truncate(name, MaxTeamNameLength)
}

// TeamTag returns 2 to 5 upper-case letters
func (r *RandomData) TeamTag() string {
	n := r.IntBetween(MinTagLength, MaxTagLength)
	return r.pick(upperLetters, n)
}

func (r *RandomData) Email() string {
	return fmt.Sprintf("%06d.%s", r.rng.Intn(1000000), strings.ToLower(randomdata.Email()))
}

func (r *RandomData) Password() string {
	return r.pick(passwordChars, 16)
}

func (r *RandomData) pick(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rng.Intn(len(alphabet))]
	}
	return string(b)
}

func slugWord(w string) string {
	w = strings.ToLower(strings.TrimSpace(w))
	return strings.Map(func(c rune) rune {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return c
		}
		return '-'
	}, w)
}

func titleWord(w string) string {
	w = strings.TrimSpace(w)
	if w == "" {
		return w
	}
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
