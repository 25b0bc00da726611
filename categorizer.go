package main

import "strings"

// categoryRule pairs a category with the keywords that select it
type categoryRule struct {
	Category Category
	Keywords []string
}

// categoryRules is the dispatch table, scanned top to bottom. Earlier rules win,
// so brand keywords sit in categories ahead of the generic terms they overlap
// with (e.g. "zomato" in Food before "company" in Salary).
var categoryRules = []categoryRule{
	{CategoryInvestment, []string{
		"zerodha", "groww", "upstox", "angel one", "kuvera", "paytm money", "smallcase",
		"stock", "equity", "demat", "brokerage", "fixed deposit", "recurring deposit",
		"ppf", "gold bond",
	}},
	{CategorySIP, []string{
		"sip", "systematic investment", "mutual fund",
	}},
	{CategoryEMI, []string{
		"emi payment", "emi debit", "emi deduction", "loan emi", "card emi",
		"loan", "instalment", "installment", "equated monthly", "bajaj finserv",
	}},
	{CategoryFood, []string{
		// Brands
		"zomato", "swiggy", "ubereats", "starbucks", "dominos", "kfc",
		"mcdonalds", "burger king", "subway", "pizza hut", "foodpanda",
		"cafe coffee day", "chaayos", "barista",
		// Generic terms
		"food", "pizza", "burger", "sandwich", "breakfast", "lunch", "dinner",
		"coffee", "tea", "meal", "restaurant", "cafe", "bakery", "snack",
		"eat", "dining", "takeaway",
	}},
	{CategoryTravel, []string{
		"uber", "ola", "rapido", "meru",
		"makemytrip", "goibigo", "yatra", "cleartrip", "airbnb", "ixigo",
		"ride", "cab", "taxi", "train", "flight", "railway",
		"hotel", "travel", "trip", "bus", "metro", "petrol", "diesel", "fuel",
	}},
	{CategoryClothing, []string{
		"myntra", "ajio", "h&m", "zara", "uniqlo", "forever 21",
		"shein", "lifestyle", "westside", "pantaloons", "nykaa fashion",
		"clothing", "clothes", "fashion", "shoes", "footwear", "sneakers",
		"dress", "shirt", "jeans", "apparel", "wear", "garment", "outfit",
	}},
	{CategoryGrocery, []string{
		"instamart", "blinkit", "zepto", "dunzo", "bigbasket", "big basket",
		"grofers", "jiomart", "amazon fresh",
		"dmart", "reliance fresh", "more", "star bazaar",
		"grocery", "groceries", "supermarket", "vegetables", "fruits",
		"milk", "bread", "provisions",
	}},
	{CategoryEntertainment, []string{
		"netflix", "hotstar", "amazon prime", "prime video", "disney",
		"spotify", "youtube", "apple music", "gaana", "wynk",
		"bookmyshow", "pvr", "inox",
		"movie", "cinema", "theatre", "gaming", "game", "concert",
		"entertainment", "show", "tickets", "event",
	}},
	{CategoryHealthcare, []string{
		"apollo", "fortis", "max", "manipal", "medanta", "aiims",
		"pharmacy", "medlife", "practo", "1mg", "netmeds", "pharmeasy", "medplus",
		"hospital", "clinic", "doctor", "medical", "medicine", "health",
		"consultation", "checkup", "treatment", "diagnostic", "lab", "test",
	}},
	{CategoryEducation, []string{
		"udemy", "coursera", "skillshare", "byju", "unacademy",
		"vedantu", "toppr", "scaler", "linkedin learning",
		"course", "education", "learning", "training", "tuition",
		"school", "college", "university", "study", "books",
	}},
	{CategoryUtilities, []string{
		"electricity board", "municipal corporation", "bescom",
		"airtel", "jio", "vodafone", "idea", "bsnl",
		"electricity", "electric", "power", "water", "gas", "lpg",
		"bill", "mobile", "recharge", "broadband", "wifi",
		"internet", "fiber", "postpaid", "prepaid",
	}},
	{CategoryShopping, []string{
		"amazon", "flipkart", "noon", "meesho", "snapdeal",
		"shopping", "purchase", "buy",
	}},
	{CategorySalary, []string{
		"salary", "payroll", "wage", "stipend", "income", "earnings",
		"company", "pvt", "ltd", "corporation",
	}},
}

// Categorizer assigns a taxonomy category from free-text transaction fields
type Categorizer struct {
	rules []categoryRule
}

// NewCategorizer builds a categorizer over rules. Keywords are normalized the
// same way as input text so punctuated keywords like "h&m" still match.
func NewCategorizer(rules []categoryRule) *Categorizer {
	normalized := make([]categoryRule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			if k := normalizeText(keyword); k != "" {
				keywords = append(keywords, k)
			}
		}
		normalized = append(normalized, categoryRule{Category: rule.Category, Keywords: keywords})
	}
	return &Categorizer{rules: normalized}
}

var defaultCategorizer = NewCategorizer(categoryRules)

// Categorize returns the category for a transaction. The description is
// scanned first; the merchant is only consulted when the description matches
// nothing. Matching is an unanchored substring test, so "cab" also matches
// "cabbage".
func (c *Categorizer) Categorize(description, merchant string) Category {
	if category, ok := c.match(normalizeText(description)); ok {
		return category
	}
	if category, ok := c.match(normalizeText(merchant)); ok {
		return category
	}
	return CategoryOthers
}

func (c *Categorizer) match(text string) (Category, bool) {
	if text == "" {
		return "", false
	}
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Category, true
			}
		}
	}
	return "", false
}

// Rules returns the taxonomy entries with their normalized keywords, in scan order
func (c *Categorizer) Rules() []categoryRule {
	return c.rules
}

// categorizeTransaction is the package-level entry point used by the ledger decoder
func categorizeTransaction(description, merchant string) Category {
	return defaultCategorizer.Categorize(description, merchant)
}
