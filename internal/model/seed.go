package model

var seed = List{
	{ID: 1, Text: "Create the project", Done: true},
	{ID: 2, Text: "Style the components", Done: true},
	{ID: 3, Text: "Build the context", Done: true},
	{ID: 4, Text: "Implement the features", Done: false},
}

// Seed returns a fresh copy of the list every provider mounts with.
func Seed() List { return seed.Clone() }

// NextIDAfter returns the first id not used by l: max(ids)+1, or 1 when empty.
func NextIDAfter(l List) int {
	hi := 0
	for _, it := range l {
		if it.ID > hi {
			hi = it.ID
		}
	}
	return hi + 1
}
