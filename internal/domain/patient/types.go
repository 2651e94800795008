package patient

import "strings"

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

func NewGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(s))
	if !g.IsValid() {
		return "", ErrInvalidGender
	}
	return g, nil
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	default:
		return false
	}
}

func (g Gender) String() string {
	return string(g)
}
