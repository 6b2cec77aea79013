package app

import "taboo/internal/domain"

// Cards is the built-in deck. Each card pairs a target word with the five
// words the clue giver must not say. Shared read-only across all rooms.
var Cards = []domain.TabooCard{
	{ID: 0, TargetWord: "pizza", TabooWords: []string{"cheese", "slice", "italian", "pepperoni", "dough"}, Category: "food"},
	{ID: 1, TargetWord: "coffee", TabooWords: []string{"drink", "caffeine", "morning", "cup", "espresso"}, Category: "food"},
	{ID: 2, TargetWord: "sushi", TabooWords: []string{"fish", "rice", "japanese", "raw", "roll"}, Category: "food"},
	{ID: 3, TargetWord: "chocolate", TabooWords: []string{"sweet", "cocoa", "candy", "brown", "bar"}, Category: "food"},
	{ID: 4, TargetWord: "pancake", TabooWords: []string{"breakfast", "syrup", "flat", "flip", "batter"}, Category: "food"},
	{ID: 5, TargetWord: "guitar", TabooWords: []string{"strings", "music", "play", "rock", "instrument"}, Category: "music"},
	{ID: 6, TargetWord: "piano", TabooWords: []string{"keys", "music", "black", "white", "instrument"}, Category: "music"},
	{ID: 7, TargetWord: "drum", TabooWords: []string{"beat", "sticks", "hit", "band", "rhythm"}, Category: "music"},
	{ID: 8, TargetWord: "elephant", TabooWords: []string{"trunk", "big", "gray", "africa", "tusks"}, Category: "animals"},
	{ID: 9, TargetWord: "penguin", TabooWords: []string{"bird", "ice", "black", "white", "antarctica"}, Category: "animals"},
	{ID: 10, TargetWord: "kangaroo", TabooWords: []string{"australia", "jump", "pouch", "hop", "joey"}, Category: "animals"},
	{ID: 11, TargetWord: "octopus", TabooWords: []string{"eight", "tentacles", "sea", "ink", "arms"}, Category: "animals"},
	{ID: 12, TargetWord: "giraffe", TabooWords: []string{"neck", "tall", "spots", "africa", "long"}, Category: "animals"},
	{ID: 13, TargetWord: "beach", TabooWords: []string{"sand", "ocean", "sun", "waves", "swim"}, Category: "places"},
	{ID: 14, TargetWord: "library", TabooWords: []string{"books", "quiet", "read", "borrow", "shelves"}, Category: "places"},
	{ID: 15, TargetWord: "airport", TabooWords: []string{"plane", "fly", "luggage", "gate", "travel"}, Category: "places"},
	{ID: 16, TargetWord: "hospital", TabooWords: []string{"doctor", "nurse", "sick", "patient", "emergency"}, Category: "places"},
	{ID: 17, TargetWord: "casino", TabooWords: []string{"gamble", "cards", "money", "vegas", "poker"}, Category: "places"},
	{ID: 18, TargetWord: "umbrella", TabooWords: []string{"rain", "wet", "open", "handle", "cover"}, Category: "objects"},
	{ID: 19, TargetWord: "mirror", TabooWords: []string{"reflection", "look", "glass", "see", "image"}, Category: "objects"},
	{ID: 20, TargetWord: "compass", TabooWords: []string{"north", "direction", "needle", "navigate", "magnetic"}, Category: "objects"},
	{ID: 21, TargetWord: "hourglass", TabooWords: []string{"sand", "time", "flip", "glass", "minutes"}, Category: "objects"},
	{ID: 22, TargetWord: "telescope", TabooWords: []string{"stars", "look", "space", "lens", "far"}, Category: "objects"},
	{ID: 23, TargetWord: "firefighter", TabooWords: []string{"fire", "hose", "truck", "rescue", "ladder"}, Category: "jobs"},
	{ID: 24, TargetWord: "astronaut", TabooWords: []string{"space", "rocket", "moon", "suit", "nasa"}, Category: "jobs"},
	{ID: 25, TargetWord: "magician", TabooWords: []string{"magic", "trick", "rabbit", "hat", "wand"}, Category: "jobs"},
	{ID: 26, TargetWord: "referee", TabooWords: []string{"whistle", "game", "rules", "foul", "sport"}, Category: "jobs"},
	{ID: 27, TargetWord: "thunder", TabooWords: []string{"lightning", "storm", "loud", "sky", "boom"}, Category: "nature"},
	{ID: 28, TargetWord: "volcano", TabooWords: []string{"lava", "erupt", "mountain", "hot", "ash"}, Category: "nature"},
	{ID: 29, TargetWord: "rainbow", TabooWords: []string{"colors", "rain", "sky", "arc", "pot"}, Category: "nature"},
	{ID: 30, TargetWord: "glacier", TabooWords: []string{"ice", "slow", "melt", "cold", "mountain"}, Category: "nature"},
	{ID: 31, TargetWord: "eclipse", TabooWords: []string{"sun", "moon", "shadow", "dark", "block"}, Category: "nature"},
	{ID: 32, TargetWord: "birthday", TabooWords: []string{"cake", "party", "candles", "age", "presents"}, Category: "events"},
	{ID: 33, TargetWord: "wedding", TabooWords: []string{"bride", "groom", "marry", "ring", "dress"}, Category: "events"},
	{ID: 34, TargetWord: "halloween", TabooWords: []string{"costume", "candy", "scary", "pumpkin", "october"}, Category: "events"},
	{ID: 35, TargetWord: "marathon", TabooWords: []string{"run", "race", "miles", "long", "finish"}, Category: "events"},
	{ID: 36, TargetWord: "robot", TabooWords: []string{"machine", "metal", "program", "artificial", "beep"}, Category: "tech"},
	{ID: 37, TargetWord: "keyboard", TabooWords: []string{"type", "keys", "computer", "letters", "press"}, Category: "tech"},
	{ID: 38, TargetWord: "satellite", TabooWords: []string{"space", "orbit", "signal", "dish", "earth"}, Category: "tech"},
	{ID: 39, TargetWord: "password", TabooWords: []string{"secret", "login", "account", "type", "forgot"}, Category: "tech"},
}
