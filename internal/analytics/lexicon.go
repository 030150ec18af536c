package analytics

// valence holds per-word sentiment intensities on the VADER scale [-4, 4].
var valence = map[string]float64{
	// positive
	"good": 1.9, "great": 3.1, "happy": 2.7, "happier": 2.4, "happiness": 2.6, "joy": 2.8,
	"joyful": 2.9, "love": 3.2, "loved": 2.9, "loving": 2.9, "lovely": 2.8, "like": 1.5,
	"liked": 1.8, "enjoy": 2.2, "enjoyed": 2.3, "fun": 2.3, "glad": 2.0, "calm": 1.3,
	"relaxed": 2.2, "relaxing": 2.2, "peaceful": 2.2, "grateful": 2.0, "thankful": 2.7,
	"hope": 1.9, "hopeful": 2.3, "optimistic": 1.3, "excited": 1.4, "exciting": 2.2,
	"wonderful": 2.7, "amazing": 2.8, "awesome": 3.1, "fantastic": 2.6, "excellent": 2.7,
	"beautiful": 2.9, "nice": 1.8, "proud": 2.1, "confident": 2.2, "strong": 2.3,
	"better": 1.9, "best": 3.2, "improve": 1.9, "improved": 2.1, "improving": 1.8,
	"success": 2.7, "successful": 2.8, "accomplished": 1.8, "achieve": 1.3, "motivated": 1.7,
	"energized": 2.1, "rested": 1.2, "safe": 1.9, "supported": 1.6, "support": 1.7,
	"kind": 2.4, "friendly": 2.2, "laugh": 2.6, "laughed": 2.0, "smile": 1.5, "smiled": 2.5,
	"content": 1.6, "satisfied": 1.8, "comfortable": 1.5, "fine": 0.8, "okay": 0.9, "ok": 1.2,
	"win": 2.8, "won": 2.7, "celebrate": 2.7, "pleased": 1.9, "delighted": 2.6, "cheerful": 2.5,
	"blessed": 2.9, "inspired": 2.2, "thrilled": 2.8, "productive": 1.6, "healthy": 1.7,
	"yes": 1.7, "thanks": 1.9, "positive": 2.6, "encouraged": 2.0,

	// negative
	"bad": -2.5, "sad": -2.1, "sadness": -1.9, "unhappy": -1.8, "depressed": -2.3,
	"depression": -2.7, "anxious": -1.0, "anxiety": -0.7, "worried": -1.2, "worry": -1.9,
	"stressed": -1.4, "stress": -1.8, "stressful": -2.2, "angry": -2.3, "anger": -2.7,
	"mad": -2.2, "upset": -1.6, "hate": -2.7, "hated": -3.2, "awful": -2.0, "terrible": -2.1,
	"horrible": -2.5, "worst": -3.1, "worse": -2.1, "lonely": -1.5, "alone": -1.0,
	"tired": -1.9, "exhausted": -1.5, "hurt": -2.4, "pain": -2.3, "painful": -2.4,
	"cry": -2.1, "cried": -1.6, "crying": -2.1, "tears": -0.9, "fear": -2.2, "afraid": -2.0,
	"scared": -1.9, "panic": -2.3, "hopeless": -2.0, "worthless": -1.9, "helpless": -2.0,
	"miserable": -2.2, "frustrated": -2.4, "frustrating": -1.9, "annoyed": -1.6,
	"disappointed": -1.9, "guilty": -1.8, "ashamed": -2.1, "shame": -2.1, "overwhelmed": -1.5,
	"broken": -1.8, "fail": -2.5, "failed": -2.3, "failure": -2.3, "lost": -1.3, "empty": -0.8,
	"numb": -1.0, "sick": -1.7, "ill": -1.8, "difficult": -1.5, "hard": -0.4, "struggle": -1.8,
	"struggling": -1.8, "problem": -1.7, "problems": -1.7, "nervous": -1.1, "die": -2.9,
	"death": -2.9, "dead": -3.3, "kill": -3.7, "suicide": -3.5, "suicidal": -3.6,
	"cant": -0.4, "no": -1.2, "never": -0.6, "sorry": -0.3, "bored": -1.1, "boring": -1.3,
	"insomnia": -1.4, "rejected": -2.0, "isolated": -1.7, "grief": -2.2, "miss": -0.6,
}

// boosters strengthen the intensity of the word that follows them.
var boosters = map[string]float64{
	"absolutely": 0.293, "amazingly": 0.293, "completely": 0.293, "deeply": 0.293,
	"extremely": 0.293, "incredibly": 0.293, "really": 0.293, "so": 0.293, "totally": 0.293,
	"truly": 0.293, "very": 0.293, "especially": 0.293, "most": 0.293, "super": 0.293,
	"barely": -0.293, "hardly": -0.293, "kinda": -0.293, "slightly": -0.293, "somewhat": -0.293,
	"little": -0.293, "partly": -0.293,
}

// negations flip and dampen the valence of a word up to three tokens later.
var negations = toSet([]string{
	"not", "no", "never", "none", "nobody", "nothing", "nowhere", "neither", "nor", "without",
	"cannot", "can't", "cant", "don't", "dont", "doesn't", "doesnt", "didn't", "didnt",
	"isn't", "isnt", "aren't", "arent", "wasn't", "wasnt", "weren't", "werent", "won't",
	"wont", "wouldn't", "wouldnt", "shouldn't", "shouldnt", "couldn't", "couldnt",
	"haven't", "havent", "hasn't", "hasnt", "hadn't", "hadnt", "ain't", "aint",
})
