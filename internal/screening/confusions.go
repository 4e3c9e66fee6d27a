package screening

// ConfusionPair is an unordered pair of single letters that dyslexic writers
// commonly substitute for one another, visually or phonetically.
type ConfusionPair struct {
	A, B byte
}

// letterConfusions is the fixed table of letter pairs checked by the scorer.
// A token matches a pair when it contains both letters anywhere, not
// necessarily adjacent.
var letterConfusions = [20]ConfusionPair{
	{'b', 'd'}, {'p', 'q'}, {'m', 'w'}, {'n', 'u'}, {'n', 'r'},
	{'i', 'j'}, {'a', 'e'}, {'s', 'z'}, {'f', 't'}, {'c', 'k'},
	{'g', 'q'}, {'h', 'n'}, {'v', 'w'}, {'b', 'p'}, {'c', 's'},
	{'d', 't'}, {'o', 'e'}, {'a', 'o'}, {'u', 'v'}, {'m', 'n'},
}

// wordConfusions is the fixed table of whole-word confusion groups. A token
// matches a group by exact string equality with any member. The table is
// kept verbatim, including near-duplicate groups; a token belonging to
// several groups accumulates the penalty once per group.
var wordConfusions = [][]string{
	{"was", "saw"}, {"there", "their"}, {"here", "hear"},
	{"you", "your"}, {"where", "wear"}, {"to", "too", "two"},
	{"here", "here"}, {"their", "there"}, {"its", "it's"},
	{"where", "were"}, {"new", "knew"}, {"your", "you're"},
	{"break", "brake"}, {"bare", "bear"}, {"peace", "piece"},
	{"right", "write"}, {"flower", "flour"}, {"buy", "by", "bye"},
	{"no", "know"}, {"for", "four"}, {"sun", "son"},
	{"allowed", "aloud"}, {"hour", "our"}, {"blew", "blue"},
}
