// Package catalog holds the static snack tables: curated picks per mood
// and the trending list. All data is fixed at compile time; accessors
// return copies so callers can't mutate the tables.
package catalog

import (
	"slices"

	"github.com/samber/lo"
)

type Snack struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       int     `json:"price"`
	ImagePrompt string  `json:"imagePrompt"`
	Rating      float64 `json:"rating,omitempty"`
	Orders      int     `json:"orders,omitempty"`
}

type Mood struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

var moods = []Mood{
	{ID: "bored", Label: "Bored", Icon: "😐", Description: "Need something interesting"},
	{ID: "hungry", Label: "Hungry", Icon: "😋", Description: "Craving something filling"},
	{ID: "sad", Label: "Melancholy", Icon: "🥺", Description: "Comfort food vibes"},
	{ID: "stressed", Label: "Stressed", Icon: "😤", Description: "Need to unwind"},
}

var byMood = map[string][]Snack{
	"bored": {
		{ID: "popcorn-1", Name: "Caramel Popcorn", Description: "Sweet, crunchy kernels with premium caramel coating", Price: 120, ImagePrompt: "gourmet caramel popcorn in elegant bowl"},
		{ID: "chips-1", Name: "Artisan Pretzel Twists", Description: "Hand-twisted pretzels with sea salt crystals", Price: 80, ImagePrompt: "artisan pretzel twists with sea salt"},
		{ID: "candy-1", Name: "Sour Gummies", Description: "Premium gummy candies with natural fruit flavors", Price: 60, ImagePrompt: "colorful gourmet sour gummy candies"},
	},
	"hungry": {
		{ID: "burger-1", Name: "Gourmet Mini Sliders", Description: "Wagyu beef sliders with truffle aioli", Price: 250, ImagePrompt: "gourmet mini burger sliders with premium ingredients"},
		{ID: "pizza-1", Name: "Wood-Fired Pizza Bites", Description: "Neapolitan-style pizza with buffalo mozzarella", Price: 180, ImagePrompt: "gourmet mini pizza bites with fresh mozzarella"},
		{ID: "fries-1", Name: "Truffle Parmesan Fries", Description: "Crispy fries with black truffle and aged parmesan", Price: 150, ImagePrompt: "gourmet loaded fries with truffle and parmesan"},
	},
	"sad": {
		{ID: "ice-cream-1", Name: "Belgian Chocolate Ice Cream", Description: "Rich dark chocolate ice cream with cookie dough chunks", Price: 200, ImagePrompt: "premium chocolate ice cream in elegant bowl"},
		{ID: "chocolate-1", Name: "Dark Chocolate Bar", Description: "70% single-origin cacao from Ecuador", Price: 100, ImagePrompt: "premium dark chocolate bar pieces"},
		{ID: "cake-1", Name: "Chocolate Decadence", Description: "Triple layer chocolate cake with ganache", Price: 220, ImagePrompt: "elegant chocolate cake slice"},
	},
	"stressed": {
		{ID: "tea-1", Name: "Chamomile Tea Set", Description: "Organic chamomile with artisan butter cookies", Price: 90, ImagePrompt: "elegant tea cup with cookies on marble surface"},
		{ID: "nuts-1", Name: "Premium Mixed Nuts", Description: "Roasted cashews, almonds, and macadamia nuts", Price: 130, ImagePrompt: "gourmet mixed nuts in wooden bowl"},
		{ID: "fruit-1", Name: "Exotic Fruit Platter", Description: "Dragon fruit, mango, and premium berries", Price: 170, ImagePrompt: "beautiful fresh fruit platter arrangement"},
	},
}

var trending = []Snack{
	{ID: "top-1", Name: "Margherita Pizza", Rating: 4.9, Orders: 342, Price: 180, ImagePrompt: "gourmet margherita pizza with fresh basil"},
	{ID: "top-2", Name: "Classic Burger", Rating: 4.8, Orders: 289, Price: 250, ImagePrompt: "gourmet burger with fresh ingredients"},
	{ID: "top-3", Name: "Vanilla Bean Ice Cream", Rating: 4.7, Orders: 256, Price: 200, ImagePrompt: "premium vanilla ice cream in elegant bowl"},
	{ID: "top-4", Name: "Truffle Fries", Rating: 4.6, Orders: 234, Price: 150, ImagePrompt: "gourmet french fries with truffle"},
}

// Moods lists the selectable moods in display order.
func Moods() []Mood {
	return slices.Clone(moods)
}

// IsMood reports whether id names a known mood.
func IsMood(id string) bool {
	return lo.ContainsBy(moods, func(m Mood) bool { return m.ID == id })
}

// ForMood returns the curated snacks for a mood, nil for unknown moods.
func ForMood(id string) []Snack {
	return slices.Clone(byMood[id])
}

// Trending returns the static trending list.
func Trending() []Snack {
	return slices.Clone(trending)
}

// ByID looks a snack up across every mood bucket and the trending list.
func ByID(id string) (Snack, bool) {
	for _, snacks := range byMood {
		if s, ok := lo.Find(snacks, func(s Snack) bool { return s.ID == id }); ok {
			return s, true
		}
	}
	return lo.Find(trending, func(s Snack) bool { return s.ID == id })
}
