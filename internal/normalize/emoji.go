package normalize

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// emojiWords maps canonical emoji codes to sentiment words. Codes not in
// this table survive as bare underscore tokens after charset filtering.
var emojiWords = map[string]string{
	":grinning_face:":                   "happy",
	":grinning_face_with_smiling_eyes:": "happy",
	":smiling_face_with_heart_eyes:":    "love",
	":smiling_face_with_sunglasses:":    "cool",
	":thumbs_up:":                       "good",
	":thumbs_down:":                     "bad",
	":crying_face:":                     "sad",
	":loudly_crying_face:":              "very_sad",
	":angry_face:":                      "angry",
	":face_with_tears_of_joy:":          "funny",
	":clapping_hands:":                  "applause",
	":fire:":                            "excited",
	":sparkles:":                        "excited",
	":thinking_face:":                   "thinking",
	":pile_of_poo:":                     "disgust",
}

// demojize converts emoji glyphs to :code: form and then maps the known
// codes to sentiment words.
func demojize(s string) string {
	for _, em := range gomoji.FindAll(s) {
		code := ":" + strings.ReplaceAll(em.Slug, "-", "_") + ":"
		s = strings.ReplaceAll(s, em.Character, " "+code+" ")
	}
	for code, word := range emojiWords {
		s = strings.ReplaceAll(s, code, word)
	}
	return s
}
