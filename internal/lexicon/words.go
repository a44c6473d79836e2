package lexicon

// FunctionWords are grammatical words excluded from the content ratio in
// density scoring. Doubles as the stopword list for the fallback
// tokenizer.
var FunctionWords = map[string]bool{}

func init() {
	for _, w := range functionWordList {
		FunctionWords[w] = true
	}
	for _, w := range commonWordList {
		CommonWords[w] = true
	}
}

var functionWordList = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could", "did",
	"do", "does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"him", "his", "how", "i", "if", "in", "into", "is", "it", "its", "itself",
	"just", "me", "more", "most", "must", "my", "no", "nor", "not", "now",
	"of", "off", "on", "once", "only", "onto", "or", "other", "our", "ours",
	"out", "over", "own", "same", "shall", "she", "should", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "upon", "us", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "whose", "why", "will", "with",
	"within", "without", "would", "you", "your", "yours",
}

// CommonWords are everyday and academic vocabulary excluded from jargon
// detection regardless of length.
var CommonWords = map[string]bool{}

var commonWordList = []string{
	"people", "important", "different", "information", "understand",
	"example", "examples", "research", "question", "questions", "problem",
	"problems", "system", "systems", "process", "processes", "measure",
	"measures", "result", "results", "study", "studies", "student",
	"students", "university", "knowledge", "language", "science",
	"relationship", "development", "government", "experience", "community",
	"education", "significant", "analysis", "approach", "evidence",
	"structure", "function", "general", "specific", "particular",
	"possible", "available", "following", "considered", "described",
	"discussed", "presented", "increased", "decreased", "increase",
	"decrease", "however", "therefore", "although", "because", "without",
	"between", "through", "towards", "already", "another", "together",
	"something", "anything", "everything", "sometimes", "usually",
	"often", "recently", "society", "history", "historical", "century",
	"countries", "country", "national", "international", "economic",
	"political", "social", "cultural", "children", "family", "families",
	"individual", "individuals", "themselves", "understanding", "argument",
	"arguments", "conclusion", "introduction", "literature", "chapter",
	"section", "paragraph", "sentence", "writing", "written", "reading",
	"author", "authors", "article", "articles", "journal", "published",
	"findings", "suggest", "suggests", "indicate", "indicates", "observed",
	"reported", "detection", "detected", "difference", "differences",
	"similar", "directly", "generally", "especially", "particularly",
}
