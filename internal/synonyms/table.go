// Package synonyms holds the static term tables and query expansion used by
// the hybrid search engine. Both tables are initialized at process start and
// never mutated, so they are safe for unlimited concurrent readers.
package synonyms

import "sort"

// synonymTable maps a canonical shopping term to its related terms.
// Expansion is symmetric: looking up any value yields the owning key and its
// siblings (see Expand).
var synonymTable = map[string][]string{
	// Electronics
	"phone":      {"mobile", "smartphone", "cellphone", "handset"},
	"laptop":     {"notebook", "ultrabook", "macbook", "chromebook"},
	"computer":   {"desktop", "workstation", "pc"},
	"tv":         {"television", "screen", "monitor"},
	"headphones": {"earphones", "earbuds", "headset"},
	"camera":     {"camcorder", "dslr", "webcam"},
	"tablet":     {"ipad", "slate"},
	"watch":      {"smartwatch", "timepiece", "wristwatch"},
	"speaker":    {"soundbar", "subwoofer", "audio"},
	"charger":    {"adapter", "powerbank", "cable"},
	"console":    {"playstation", "xbox", "nintendo", "gaming"},
	"keyboard":   {"keypad", "mechanical"},
	"mouse":      {"trackpad", "trackball"},

	// Clothing and accessories
	"shoes":  {"sneakers", "trainers", "footwear", "boots"},
	"shirt":  {"tshirt", "tee", "top", "blouse"},
	"pants":  {"trousers", "jeans", "leggings"},
	"jacket": {"coat", "hoodie", "windbreaker"},
	"dress":  {"gown", "skirt"},
	"bag":    {"backpack", "handbag", "purse", "tote"},
	"hat":    {"cap", "beanie"},
	"socks":  {"stockings", "hosiery"},

	// Home and furniture
	"sofa":     {"couch", "settee", "loveseat"},
	"table":    {"desk", "stand"},
	"chair":    {"stool", "armchair", "recliner"},
	"lamp":     {"light", "lighting"},
	"mattress": {"bed", "bedding"},
	"curtain":  {"drape", "blind"},
	"rug":      {"carpet", "doormat"},

	// Appliances and kitchen
	"fridge":  {"refrigerator", "freezer", "cooler"},
	"oven":    {"stove", "cooker", "microwave"},
	"blender": {"mixer", "juicer", "processor"},
	"vacuum":  {"hoover", "cleaner"},
	"kettle":  {"teapot", "boiler"},
	"pan":     {"skillet", "saucepan", "wok"},

	// Sports and outdoors
	"bike":    {"bicycle", "cycle", "ebike"},
	"ball":    {"football", "basketball", "soccer"},
	"mat":     {"yoga", "pilates"},
	"weights": {"dumbbells", "barbell", "kettlebell"},
	"tent":    {"camping", "shelter"},
	"racket":  {"racquet", "paddle"},

	// Beauty and personal care
	"perfume":  {"fragrance", "cologne", "scent"},
	"lipstick": {"makeup", "gloss"},
	"shampoo":  {"conditioner", "haircare"},
	"cream":    {"lotion", "moisturizer", "serum"},
	"razor":    {"shaver", "trimmer"},

	// Books and toys
	"book":     {"novel", "paperback", "hardcover", "ebook"},
	"toy":      {"game", "puzzle", "lego"},
	"stroller": {"pram", "buggy", "pushchair"},
}

// categoryConcepts maps a category-name fragment to the concept words added
// for products in that category. Matching is by substring of the lower-cased
// category name.
var categoryConcepts = map[string][]string{
	"electronics": {"gadget", "device", "tech", "electronic", "digital"},
	"clothing":    {"apparel", "wear", "fashion", "outfit", "garment"},
	"furniture":   {"furnishing", "decor", "interior", "household"},
	"appliance":   {"appliances", "kitchenware", "utility"},
	"sports":      {"sport", "exercise", "workout", "athletic", "outdoor"},
	"beauty":      {"skincare", "grooming", "cosmetic", "wellness"},
	"books":       {"reading", "literature", "stationery"},
	"toys":        {"play", "kids", "children", "fun"},
}

// Sorted key slices so table scans are deterministic regardless of map
// iteration order.
var (
	synonymKeys []string
	conceptKeys []string
)

func init() {
	synonymKeys = sortedKeys(synonymTable)
	conceptKeys = sortedKeys(categoryConcepts)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the synonym group for a canonical term.
func Lookup(term string) ([]string, bool) {
	vals, ok := synonymTable[term]
	return vals, ok
}

// Keys returns the canonical synonym terms in sorted order.
func Keys() []string {
	return synonymKeys
}
