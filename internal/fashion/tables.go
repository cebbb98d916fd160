package fashion

// Reference vocabularies for keyword classification. Scans are linear and
// order matters for pattern/style matching: the first entry found in a label
// wins. Bump the cache schema version in internal/cache when these change.

var clothingCategories = []string{
	"shirt", "t-shirt", "dress", "pants", "jeans", "shorts", "skirt",
	"jacket", "coat", "sweater", "hoodie", "blazer", "suit", "tie",
	"shoes", "sneakers", "heels", "boots", "sandals", "hat", "cap",
	"sunglasses", "glasses", "watch", "bracelet", "necklace", "earrings",
	"ring", "bag", "handbag", "backpack", "wallet", "belt", "scarf",
}

// Pattern entries with underscores match against their space-rendered form.
var patternTypes = []string{
	"solid", "striped", "plaid", "checkered", "dotted", "floral",
	"geometric", "animal_print", "camouflage", "logo", "graphic",
}

var styleCategories = []string{
	"casual", "formal", "business", "sporty", "athletic", "streetwear",
	"vintage", "bohemian", "preppy", "punk", "minimalist", "luxury",
}

var commonColors = []string{
	"red", "blue", "green", "yellow", "black", "white", "pink",
	"purple", "orange", "brown", "gray", "navy", "teal", "gold", "silver",
}

const (
	defaultPattern = "solid"
	defaultStyle   = "casual"
)
