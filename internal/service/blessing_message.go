package service

import (
	"math/rand"

	"kaineetam/internal/errors"
	"kaineetam/internal/model"
)

// blessingCatalog holds the candidate lines per tone. One line is picked at
// creation time and stored on the record, so a blessing keeps its wording
// across views.
var blessingCatalog = map[model.Tone][]string{
	model.ToneTraditional: {
		"നിനക്ക് സമൃദ്ധിയും സുഖവും പൂർണ്ണമായി കിട്ടില്ലേ!",
		"ഇന്നത്തെ വിഷുവിന് ദൈവത്തിന്റെ അനുഗ്രഹങ്ങൾ!",
		"ഈ വിഷുവിൽ നിനക്ക് വിജയവും സമാധാനവും നേർക്കാം!",
	},
	model.ToneModern: {
		"Wishing you gold, growth, and good vibes!",
		"Here's to fresh starts and fat wallets!",
		"May your Vishu be rich — in vibes and kaineetam!",
	},
	model.ToneFunny: {
		"This Vishu, don't ghost me. GPay me!",
		"Blessings are free. Kaineetam isn't!",
		"May your UPI balance be ever in your favor.",
	},
	model.TonePoetic: {
		"Like the golden Kani blooms, may your life blossom with success and fortune this Vishu.",
	},
	model.ToneSimple: {
		"Happy Vishu! Wishing you the very best.",
	},
}

// ResolveBlessing picks a blessing line for the tone. An unrecognized tone is
// a validation failure rather than a silent fallback to a default tone.
func ResolveBlessing(tone model.Tone) (string, error) {
	lines, ok := blessingCatalog[tone]
	if !ok || len(lines) == 0 {
		return "", errors.ErrUnknownTone
	}
	return lines[rand.Intn(len(lines))], nil
}
