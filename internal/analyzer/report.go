package analyzer

// Report is the structured quality assessment of one generated response.
// Detailed scores and the overall score are on a 0-100 scale, rounded to
// two decimals; grades follow the A>=90 / B>=80 / C>=70 / D>=60 / F
// thresholds.
type Report struct {
	OverallScore    float64            `json:"overall_score"`
	Grade           string             `json:"grade"`
	Metrics         Metrics            `json:"metrics"`
	Strengths       []string           `json:"strengths"`
	Weaknesses      []string           `json:"weaknesses"`
	Recommendations []string           `json:"recommendations"`
	DetailedScores  map[string]float64 `json:"detailed_scores"`
}

// Metrics are the raw counts underlying the scores. Sentence and
// paragraph counts ignore empty segments, so empty input floors at zero.
type Metrics struct {
	ResponseLength    int     `json:"response_length"`
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	ParagraphCount    int     `json:"paragraph_count"`
	ExecutionTime     float64 `json:"execution_time"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}
