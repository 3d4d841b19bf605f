package game

import "math/rand"

// DefaultCategories is the classic esm-famil category list, in play order.
var DefaultCategories = []string{
	"اسم",
	"فامیل",
	"شهر",
	"کشور",
	"حیوان",
	"غذا",
	"میوه",
	"اشیا",
}

// alphabet holds the letters a round can start with. ء and آ are left
// out; words are filed under their base letter.
var alphabet = []string{
	"ا", "ب", "پ", "ت", "ث", "ج", "چ", "ح", "خ",
	"د", "ذ", "ر", "ز", "ژ", "س", "ش", "ص", "ض",
	"ط", "ظ", "ع", "غ", "ف", "ق", "ک", "گ", "ل",
	"م", "ن", "و", "ه", "ی",
}

func randomLetter() string {
	return alphabet[rand.Intn(len(alphabet))]
}
