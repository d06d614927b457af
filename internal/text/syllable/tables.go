package syllable

// Separator marks a syllable boundary in a rendered word.
const Separator = "-"

// exceptions maps a clean word to its authoritative syllabification. Entries
// cover words the rule chain is known to mis-split; they are never reprocessed.
var exceptions = map[string]string{
	"lived":       "lived",
	"baked":       "baked",
	"apple":       "ap-ple",
	"bottle":      "bot-tle",
	"little":      "lit-tle",
	"table":       "ta-ble",
	"people":      "peo-ple",
	"queue":       "queue",
	"science":     "sci-ence",
	"quiet":       "qui-et",
	"lion":        "li-on",
	"fire":        "fire",
	"hour":        "hour",
	"our":         "our",
	"beautiful":   "beau-ti-ful",
	"education":   "ed-u-ca-tion",
	"nation":      "na-tion",
	"station":     "sta-tion",
	"motion":      "mo-tion",
	"action":      "ac-tion",
	"question":    "ques-tion",
	"business":    "busi-ness",
	"syllable":    "syl-la-ble",
	"rhythm":      "rhythm",
	"family":      "fam-i-ly",
	"camera":      "cam-er-a",
	"every":       "ev-ery",
	"chocolate":   "choc-o-late",
	"interesting": "in-ter-est-ing",
	"different":   "dif-fer-ent",
	"separate":    "sep-a-rate",
	"favorite":    "fa-vor-ite",
	"temperature": "tem-per-a-ture",
	"vegetable":   "veg-e-ta-ble",
	"comfortable": "com-fort-a-ble",
	"animal":      "an-i-mal",
	"banana":      "ba-na-na",
	"elephant":    "el-e-phant",
	"computer":    "com-pu-ter",
	"umbrella":    "um-brel-la",
	"remember":    "re-mem-ber",
	"together":    "to-geth-er",
	"tomorrow":    "to-mor-row",
	"yesterday":   "yes-ter-day",
	"holiday":     "hol-i-day",
	"library":     "li-brar-y",
	"memory":      "mem-o-ry",
	"history":     "his-to-ry",
	"factory":     "fac-to-ry",
	"category":    "cat-e-go-ry",
	"directory":   "di-rec-to-ry",
	"necessary":   "nec-es-sar-y",
	"ordinary":    "or-di-nar-y",
	"primary":     "pri-ma-ry",
	"secondary":   "sec-on-da-ry",
	"dictionary":  "dic-tion-ar-y",
	"stationary":  "sta-tion-ar-y",
	"temporary":   "tem-po-rar-y",
	"voluntary":   "vol-un-tar-y",
	"contrary":    "con-trar-y",
	"military":    "mil-i-tar-y",
	"secretary":   "sec-re-tar-y",
	"salary":      "sal-a-ry",

	// Compounds and non-inflected look-alikes the suffix rules split wrongly.
	"hundred":    "hun-dred",
	"something":  "some-thing",
	"anything":   "an-y-thing",
	"everything": "ev-ery-thing",
	"everyone":   "ev-ery-one",
	"element":    "el-e-ment",
	"possible":   "pos-si-ble",
	"impossible": "im-pos-si-ble",
	"forest":     "for-est",
}

// suffixRule describes a suffix that forms its own trailing syllable(s).
type suffixRule struct {
	suffix string
	render string // suffix rendering, may hold inner boundaries

	// doubledOnly restricts the rule to bases ending in a doubled consonant
	// ("big|ger"), where the split is unambiguous.
	doubledOnly bool

	// after, when set, lists the only letters the base may end with.
	after string

	// keepOnset skips the rule when the base's last letter and the suffix's
	// first letter form an onset pair ("re|ply", not "rep|ly").
	keepOnset bool
}

// suffixes is tried in order; the first rule whose suffix matches and whose
// conditions hold wins.
var suffixes = []suffixRule{
	{suffix: "tion", render: "tion"},
	{suffix: "sion", render: "sion"},
	{suffix: "ness", render: "ness"},
	{suffix: "ment", render: "ment"},
	{suffix: "less", render: "less"},
	{suffix: "able", render: "a-ble"},
	{suffix: "ible", render: "i-ble"},
	{suffix: "ful", render: "ful"},
	{suffix: "ing", render: "ing"},
	{suffix: "est", render: "est", doubledOnly: true},
	{suffix: "ed", render: "ed", after: "td"},
	{suffix: "er", render: "er", doubledOnly: true},
	{suffix: "ly", render: "ly", keepOnset: true},
}

// keepDoubled lists consonants whose doubling belongs to the base word
// ("tell", "pass", "stuff", "buzz"), so the pair is not split before a suffix.
var keepDoubled = map[rune]bool{'l': true, 's': true, 'f': true, 'z': true}

var vowels = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true}

// vowelDigraphs contract into a single nucleus. The second letter is absorbed.
var vowelDigraphs = set(
	"ea", "oa", "ie", "ou", "ai", "ee", "oo", "ue", "ei", "au", "oi", "oy", "ow", "ew",
)

// onsetPairs are two-consonant clusters that stay together at a boundary.
var onsetPairs = set(
	"sh", "th", "ch", "wh", "ph", "ck", "ss",
	"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr", "pl", "pr",
	"sc", "sk", "sl", "sm", "sn", "sp", "st", "sw", "tr", "tw",
)

// onsetTriples are three-consonant clusters that stay together at a boundary.
var onsetTriples = set(
	"str", "spr", "scr", "spl", "thr", "shr", "chr", "sch",
)

// neverSplit sequences inside a consonant run push the boundary to the
// start of the run.
var neverSplit = []string{"tch", "dge", "phth"}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

// Exceptions returns a copy of the exception table.
func Exceptions() map[string]string {
	out := make(map[string]string, len(exceptions))
	for k, v := range exceptions {
		out[k] = v
	}
	return out
}
