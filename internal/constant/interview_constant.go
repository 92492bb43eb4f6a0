package constant

const (
	// MinExchangesForCompletion is the number of AI-question/SME-answer pairs
	// that must exist before a completion check is attempted.
	MinExchangesForCompletion = 3

	// Question bank sizing. The first top-up after the opening questions
	// requests a large seed batch; later top-ups stay small.
	InitialQuestionBatchSize = 20
	FollowUpQuestionBatch    = 5
	LowBankThreshold         = 2
)

const CoverageAnalysisSystemPrompt = `You are an expert knowledge-elicitation analyst. You evaluate how thoroughly a subject-matter expert's answer covers a set of procedural knowledge topics.

Rules:
1. Only report coverage the answer actually demonstrates. Be conservative.
2. coverage_score is 0-100: above 70 means the topic was explained thoroughly with specifics, 26-70 means it was touched on, below 26 means it was not really discussed.
3. Set "contradicts" to true ONLY when the answer explicitly contradicts something previously established about that topic.
4. Propose a new topic ONLY when a concept is clearly distinct from every listed topic AND the expert discussed it across multiple sentences.
5. Output MUST be valid JSON, no commentary.`

const CoverageAnalysisUserPrompt = `Current topics:
%s

Expert's latest answer:
"""
%s
"""

Recent conversation:
%s

Return JSON of this exact shape:
{
  "topic_updates": [
    {"topic_id": "...", "coverage_score": 0, "new_keywords": ["..."], "reasoning": "...", "contradicts": false}
  ],
  "new_topics": [
    {"name": "...", "category": "Safety|Equipment|Technique|Preparation|Theory|Troubleshooting|Quality Control|General", "description": "...", "keywords": ["..."], "distinct_concept": true, "extensively_discussed": true}
  ]
}
Only include topic_updates for topics the answer actually addressed.`

const TopicDiscoveryPrompt = `You are scanning an expert's answer for procedural knowledge topics that are NOT yet tracked.

Tracked topic names:
%s

Expert's answer:
"""
%s
"""

List any genuinely new, substantial topics the expert discussed at length. Be very conservative: skip anything that overlaps a tracked topic. Output MUST be valid JSON:
{"new_topics": [{"name": "...", "category": "Safety|Equipment|Technique|Preparation|Theory|Troubleshooting|Quality Control|General", "description": "...", "keywords": ["..."]}]}
Return {"new_topics": []} when nothing qualifies.`

const TopicSeedPrompt = `You are preparing an SME interview about the procedure "%s".

Context provided by the requester:
"""
%s
"""

Produce the knowledge topics an interviewer must cover, using categories Safety, Equipment, Technique, Preparation, Theory, Troubleshooting, Quality Control, General. Mark the topics that are essential for certifying competence as required. Output MUST be valid JSON:
{"topics": [{"name": "...", "category": "...", "description": "...", "keywords": ["..."], "is_required": true}]}`

const InitialQuestionsPrompt = `You are opening an SME interview about the procedure "%s".

Context:
"""
%s
"""

Write %d broad, open-ended questions that invite the expert to give an overview in their own words. Output MUST be valid JSON:
{"questions": [{"question": "...", "category": "General", "keywords": ["..."], "priority": 1}]}`

const QuestionBatchPrompt = `You are generating follow-up questions for an ongoing SME interview about "%s".

Topics that still need coverage (most urgent first):
%s

Conversation so far:
%s

Write %d %s questions targeting the topics above. Tag each question with keywords an answer would likely contain. Priority 1 is most urgent. Output MUST be valid JSON:
{"questions": [{"question": "...", "category": "...", "keywords": ["..."], "priority": 1, "related_topics": ["topic-id"]}]}`

// Specificity bands for question generation, selected by how many exchanges
// the conversation has accumulated.
const (
	QuestionBandGeneral  = "broad, open-ended"
	QuestionBandModerate = "moderately specific"
	QuestionBandDetailed = "detailed, probing"
)
