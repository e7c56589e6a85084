package catalog

import "fjacquet/expense-ml/internal/models"

// DefaultEntries returns the built-in keyword catalog used when no catalog
// file is configured. Order matters: the first matching entry wins, so more
// specific phrases are listed before the general terms they contain.
func DefaultEntries() []models.KeywordEntry {
	return []models.KeywordEntry{
		// Transportation - cab
		{Keyword: "uber", Category: "cab"},
		{Keyword: "ola", Category: "cab"},
		{Keyword: "rapido", Category: "cab"},
		{Keyword: "taxi", Category: "cab"},
		{Keyword: "cab", Category: "cab"},
		{Keyword: "lyft", Category: "cab"},
		{Keyword: "rideshare", Category: "cab"},
		{Keyword: "autorickshaw", Category: "cab"},
		{Keyword: "auto", Category: "cab"},

		// Transportation - metro
		{Keyword: "delhi metro", Category: "metro"},
		{Keyword: "metro", Category: "metro"},
		{Keyword: "dmrc", Category: "metro"},
		{Keyword: "rapid", Category: "metro"},

		// Transportation - bus
		{Keyword: "bus", Category: "bus"},
		{Keyword: "prtc", Category: "bus"},
		{Keyword: "dtc", Category: "bus"},

		// Transportation - train
		{Keyword: "train", Category: "train"},
		{Keyword: "railway", Category: "train"},
		{Keyword: "irctc", Category: "train"},
		{Keyword: "local", Category: "train"},

		// Transportation - flight
		{Keyword: "air india", Category: "flight"},
		{Keyword: "flight", Category: "flight"},
		{Keyword: "airline", Category: "flight"},
		{Keyword: "airways", Category: "flight"},
		{Keyword: "indigo", Category: "flight"},
		{Keyword: "spicejet", Category: "flight"},
		{Keyword: "vistara", Category: "flight"},

		// Transportation - fuel
		{Keyword: "petrol", Category: "fuel"},
		{Keyword: "diesel", Category: "fuel"},
		{Keyword: "gas", Category: "fuel"},
		{Keyword: "fuel", Category: "fuel"},
		{Keyword: "cng", Category: "fuel"},
		{Keyword: "hp", Category: "fuel"},
		{Keyword: "shell", Category: "fuel"},

		// Transportation - parking
		{Keyword: "parking", Category: "parking"},
		{Keyword: "park", Category: "parking"},
		{Keyword: "toll", Category: "parking"},

		// Food - dining
		{Keyword: "food delivery", Category: "dining"},
		{Keyword: "eat out", Category: "dining"},
		{Keyword: "swiggy", Category: "dining"},
		{Keyword: "zomato", Category: "dining"},
		{Keyword: "restaurant", Category: "dining"},
		{Keyword: "dinner", Category: "dining"},
		{Keyword: "lunch", Category: "dining"},
		{Keyword: "breakfast", Category: "dining"},
		{Keyword: "brunch", Category: "dining"},
		{Keyword: "dine", Category: "dining"},
		{Keyword: "pizza", Category: "dining"},
		{Keyword: "burger", Category: "dining"},
		{Keyword: "biryani", Category: "dining"},
		{Keyword: "dominos", Category: "dining"},
		{Keyword: "mcdonalds", Category: "dining"},
		{Keyword: "kfc", Category: "dining"},
		{Keyword: "subway", Category: "dining"},

		// Food - groceries
		{Keyword: "big basket", Category: "groceries"},
		{Keyword: "reliance fresh", Category: "groceries"},
		{Keyword: "grocery", Category: "groceries"},
		{Keyword: "groceries", Category: "groceries"},
		{Keyword: "supermarket", Category: "groceries"},
		{Keyword: "bigbasket", Category: "groceries"},
		{Keyword: "dmart", Category: "groceries"},
		{Keyword: "blinkit", Category: "groceries"},
		{Keyword: "instamart", Category: "groceries"},
		{Keyword: "zepto", Category: "groceries"},
		{Keyword: "jiomart", Category: "groceries"},
		{Keyword: "vegetables", Category: "groceries"},
		{Keyword: "provisions", Category: "groceries"},

		// Fruits
		{Keyword: "apple", Category: "fruits"},
		{Keyword: "banana", Category: "fruits"},
		{Keyword: "grapes", Category: "fruits"},
		{Keyword: "orange", Category: "fruits"},
		{Keyword: "watermelon", Category: "fruits"},
		{Keyword: "pineapple", Category: "fruits"},
		{Keyword: "mango", Category: "fruits"},

		// Food - snacks
		{Keyword: "cafe", Category: "snacks"},
		{Keyword: "coffee", Category: "snacks"},
		{Keyword: "starbucks", Category: "snacks"},
		{Keyword: "ccd", Category: "snacks"},
		{Keyword: "tea", Category: "snacks"},
		{Keyword: "snack", Category: "snacks"},
		{Keyword: "bakery", Category: "snacks"},
		{Keyword: "dunkin", Category: "snacks"},

		// Food - liquor
		{Keyword: "old monk", Category: "liquor"},
		{Keyword: "liquor", Category: "liquor"},
		{Keyword: "wine", Category: "liquor"},
		{Keyword: "beer", Category: "liquor"},
		{Keyword: "gin", Category: "liquor"},
		{Keyword: "whisky", Category: "liquor"},
		{Keyword: "whiskey", Category: "liquor"},
		{Keyword: "vodka", Category: "liquor"},
		{Keyword: "rum", Category: "liquor"},
		{Keyword: "alcohol", Category: "liquor"},
		{Keyword: "bar", Category: "liquor"},
		{Keyword: "pub", Category: "liquor"},
		{Keyword: "jameson", Category: "liquor"},
		{Keyword: "indri", Category: "liquor"},

		// Entertainment - movies
		{Keyword: "bookmyshow", Category: "movies"},
		{Keyword: "movie", Category: "movies"},
		{Keyword: "cinema", Category: "movies"},
		{Keyword: "pvr", Category: "movies"},
		{Keyword: "inox", Category: "movies"},
		{Keyword: "cinepolis", Category: "movies"},
		{Keyword: "theatre", Category: "movies"},
		{Keyword: "film", Category: "movies"},

		// Entertainment - membership
		{Keyword: "youtube premium", Category: "membership"},
		{Keyword: "amazon prime", Category: "membership"},
		{Keyword: "netflix", Category: "membership"},
		{Keyword: "prime", Category: "membership"},
		{Keyword: "hotstar", Category: "membership"},
		{Keyword: "spotify", Category: "membership"},
		{Keyword: "subscription", Category: "membership"},
		{Keyword: "membership", Category: "membership"},

		// Entertainment - music
		{Keyword: "music", Category: "music"},
		{Keyword: "concert", Category: "music"},
		{Keyword: "gaana", Category: "music"},
		{Keyword: "jiosaavn", Category: "music"},

		// Entertainment - sports
		{Keyword: "gym", Category: "sports"},
		{Keyword: "fitness", Category: "sports"},
		{Keyword: "yoga", Category: "sports"},
		{Keyword: "sports", Category: "sports"},
		{Keyword: "swimming", Category: "sports"},
		{Keyword: "badminton", Category: "sports"},
		{Keyword: "cricket", Category: "sports"},
		{Keyword: "football", Category: "sports"},
		{Keyword: "workout", Category: "sports"},

		// Housing - rent
		{Keyword: "house rent", Category: "rent"},
		{Keyword: "rent", Category: "rent"},
		{Keyword: "apartment", Category: "rent"},
		{Keyword: "mortgage", Category: "rent"},
		{Keyword: "lease", Category: "rent"},

		// Housing - electricity
		{Keyword: "electric bill", Category: "electricity"},
		{Keyword: "electricity", Category: "electricity"},
		{Keyword: "power", Category: "electricity"},

		// Housing - water
		{Keyword: "water bill", Category: "water"},
		{Keyword: "water", Category: "water"},

		// Housing - maintenance
		{Keyword: "maintenance", Category: "maintenance"},
		{Keyword: "repair", Category: "maintenance"},
		{Keyword: "plumber", Category: "maintenance"},
		{Keyword: "electrician", Category: "maintenance"},
		{Keyword: "carpenter", Category: "maintenance"},

		// Housing - furniture
		{Keyword: "furniture", Category: "furniture"},
		{Keyword: "ikea", Category: "furniture"},
		{Keyword: "sofa", Category: "furniture"},
		{Keyword: "table", Category: "furniture"},
		{Keyword: "chair", Category: "furniture"},
		{Keyword: "bed", Category: "furniture"},

		// Utilities - internet
		{Keyword: "jio fiber", Category: "internet"},
		{Keyword: "internet", Category: "internet"},
		{Keyword: "wifi", Category: "internet"},
		{Keyword: "broadband", Category: "internet"},
		{Keyword: "fiber", Category: "internet"},
		{Keyword: "airtel", Category: "internet"},

		// Utilities - phone
		{Keyword: "phone", Category: "phone"},
		{Keyword: "recharge", Category: "phone"},
		{Keyword: "prepaid", Category: "phone"},
		{Keyword: "postpaid", Category: "phone"},
		{Keyword: "sim", Category: "phone"},

		// Healthcare
		{Keyword: "health checkup", Category: "health"},
		{Keyword: "medicine", Category: "health"},
		{Keyword: "doctor", Category: "health"},
		{Keyword: "hospital", Category: "health"},
		{Keyword: "pharmacy", Category: "health"},
		{Keyword: "medical", Category: "health"},
		{Keyword: "clinic", Category: "health"},
		{Keyword: "consultation", Category: "health"},
		{Keyword: "apollo", Category: "health"},
		{Keyword: "fortis", Category: "health"},
		{Keyword: "netmeds", Category: "health"},

		// Personal care
		{Keyword: "salon", Category: "personal"},
		{Keyword: "haircut", Category: "personal"},
		{Keyword: "spa", Category: "personal"},
		{Keyword: "cosmetics", Category: "personal"},
		{Keyword: "skincare", Category: "personal"},
		{Keyword: "grooming", Category: "personal"},

		// Shopping - clothing
		{Keyword: "clothing", Category: "clothing"},
		{Keyword: "clothes", Category: "clothing"},
		{Keyword: "shirt", Category: "clothing"},
		{Keyword: "pants", Category: "clothing"},
		{Keyword: "shoes", Category: "clothing"},
		{Keyword: "fashion", Category: "clothing"},
		{Keyword: "myntra", Category: "clothing"},
		{Keyword: "ajio", Category: "clothing"},
		{Keyword: "zara", Category: "clothing"},
		{Keyword: "h&m", Category: "clothing"},

		// Shopping - electronics
		{Keyword: "reliance digital", Category: "electronics"},
		{Keyword: "electronics", Category: "electronics"},
		{Keyword: "mobile", Category: "electronics"},
		{Keyword: "laptop", Category: "electronics"},
		{Keyword: "tv", Category: "electronics"},
		{Keyword: "camera", Category: "electronics"},
		{Keyword: "croma", Category: "electronics"},

		// Education
		{Keyword: "education", Category: "education"},
		{Keyword: "tuition", Category: "education"},
		{Keyword: "course", Category: "education"},
		{Keyword: "books", Category: "education"},
		{Keyword: "school", Category: "education"},
		{Keyword: "college", Category: "education"},
		{Keyword: "udemy", Category: "education"},
		{Keyword: "coursera", Category: "education"},

		// Insurance
		{Keyword: "insurance", Category: "insurance"},
		{Keyword: "premium", Category: "insurance"},
		{Keyword: "policy", Category: "insurance"},
		{Keyword: "lic", Category: "insurance"},

		// Taxes
		{Keyword: "income tax", Category: "taxes"},
		{Keyword: "tax", Category: "taxes"},
		{Keyword: "gst", Category: "taxes"},

		// Pets
		{Keyword: "dog food", Category: "pets"},
		{Keyword: "cat food", Category: "pets"},
		{Keyword: "pet", Category: "pets"},
		{Keyword: "vet", Category: "pets"},
		{Keyword: "veterinary", Category: "pets"},

		// General shopping stays uncategorized so the classifier can learn
		// the user's actual habits for these merchants.
		{Keyword: "amazon", Category: models.CategoryUncategorized},
		{Keyword: "flipkart", Category: models.CategoryUncategorized},
		{Keyword: "shopping", Category: models.CategoryUncategorized},
	}
}
