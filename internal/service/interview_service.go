package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"zyglio-be/internal/constant"
	"zyglio-be/internal/dto"
	"zyglio-be/internal/entity"
	"zyglio-be/internal/pkg/logger"
	"zyglio-be/internal/repository/contract"
	"zyglio-be/internal/repository/specification"
	"zyglio-be/internal/repository/unitofwork"
	"zyglio-be/pkg/interview/completion"
	"zyglio-be/pkg/interview/coverage"
	"zyglio-be/pkg/interview/discovery"
	"zyglio-be/pkg/interview/questiongen"
	"zyglio-be/pkg/interview/selector"
	"zyglio-be/pkg/interview/topics"
	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IInterviewService defines the interview orchestration interface
type IInterviewService interface {
	StartInterview(ctx context.Context, request *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	SubmitAnswer(ctx context.Context, request *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetCoverage(ctx context.Context, procedureId uuid.UUID) (*dto.GetCoverageResponse, error)
	GetTranscript(ctx context.Context, procedureId uuid.UUID) (*dto.GetTranscriptResponse, error)
	EndInterview(ctx context.Context, request *dto.EndInterviewRequest) error
}

// interviewService coordinates the interview domain components. Service-level
// events go to the shared zap logger; raw LLM traffic goes to an isolated file.
type interviewService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo contract.InterviewSessionRepository
	pubSub      *gochannel.GoChannel
	topicName   string
	logger      logger.ILogger
	llmLogger   *log.Logger

	bootstrapper *topics.Bootstrapper
	generator    *questiongen.Generator
	analyzer     *coverage.Analyzer
	discoverer   *discovery.Discoverer
	evaluator    *completion.Evaluator
	selector     *selector.Selector
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	sessionRepo contract.InterviewSessionRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IInterviewService {

	llmLogger := initLLMLogger()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &interviewService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
		pubSub:      pubSub,
		topicName:   topicName,
		logger:      log,
		llmLogger:   llmLogger,

		bootstrapper: topics.NewBootstrapper(llmProvider, llmLogger),
		generator:    questiongen.NewGenerator(llmProvider, llmLogger),
		analyzer:     coverage.NewAnalyzer(llmProvider, llmLogger),
		discoverer:   discovery.NewDiscoverer(llmProvider, llmLogger),
		evaluator:    completion.NewEvaluator(),
		selector:     selector.NewSelector(rng, llmLogger),
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_interview.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-INTERVIEW] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// StartInterview seeds the topic ledger and question bank for a procedure and
// asks the opening question. Starting an already-running interview resumes it
// instead of resetting accumulated coverage.
func (is *interviewService) StartInterview(ctx context.Context, request *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	uow := is.uowFactory.NewUnitOfWork(ctx)

	procedure, err := uow.ProcedureRepository().FindOne(ctx,
		specification.ByID{ID: request.ProcedureId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, fmt.Errorf("procedure not found")
	}

	if session, found := is.sessionRepo.Get(request.ProcedureId.String()); found {
		return &dto.StartInterviewResponse{
			ProcedureId:   request.ProcedureId,
			FirstQuestion: lastAskedQuestion(session),
			Topics:        topicDTOs(session.Topics),
		}, nil
	}

	now := time.Now()
	session := &store.Session{
		ProcedureId:      request.ProcedureId.String(),
		InitialContext:   request.InitialContext,
		Topics:           is.bootstrapper.Seed(ctx, procedure.Title, request.InitialContext),
		BatchedQuestions: is.generator.InitialQuestions(ctx, procedure.Title, request.InitialContext),
	}

	// The fallback generators guarantee a non-empty bank, so first is never nil.
	first := is.selector.SelectNext(session, request.InitialContext)
	session.AppendEntry(store.RoleAI, first.Question, now)
	session.QuestionsAsked++

	is.sessionRepo.Save(session)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.InterviewTurnRepository().Create(ctx, &entity.InterviewTurn{
		Id:          uuid.New(),
		ProcedureId: request.ProcedureId,
		Role:        store.RoleAI,
		Content:     first.Question,
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}
	if err := is.snapshotSession(ctx, uow, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.StartInterviewResponse{
		ProcedureId:   request.ProcedureId,
		FirstQuestion: questionDTO(first),
		Topics:        topicDTOs(session.Topics),
	}, nil
}

// SubmitAnswer processes one SME answer: coverage analysis, topic discovery,
// the guarded completion check, and next-question selection.
func (is *interviewService) SubmitAnswer(ctx context.Context, request *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := is.loadSession(ctx, request.ProcedureId)
	if err != nil {
		return nil, err
	}

	if session.InterviewCompleted {
		return &dto.SubmitAnswerResponse{
			NextQuestion:       nil,
			InterviewCompleted: true,
			Coverage:           statsDTO(session.Stats()),
			Topics:             topicDTOs(session.Topics),
		}, nil
	}

	uow := is.uowFactory.NewUnitOfWork(ctx)
	procedure, err := uow.ProcedureRepository().FindOne(ctx, specification.ByID{ID: request.ProcedureId})
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, fmt.Errorf("procedure not found")
	}

	now := time.Now()
	session.AppendEntry(store.RoleUser, request.Answer, now)
	if !session.FirstOverviewGiven {
		// The opening question asks for a broad overview; the first answer is it.
		session.FirstOverviewGiven = true
	}

	is.analyzer.Analyze(ctx, session, request.Answer)
	is.discoverer.Discover(ctx, session, request.Answer)

	// The completion rule only fires after a minimum number of exchanges so a
	// lucky keyword-dense opening answer cannot end the interview on turn one.
	completed := false
	if session.ExchangeCount() >= constant.MinExchangesForCompletion {
		completed = is.evaluator.Evaluate(session)
	}

	var next *store.Question
	if !completed {
		next = is.nextQuestion(ctx, session, procedure.Title, request.Answer)
		if next != nil {
			session.AppendEntry(store.RoleAI, next.Question, now)
			session.QuestionsAsked++
		}
	}

	is.sessionRepo.Save(session)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.InterviewTurnRepository().Create(ctx, &entity.InterviewTurn{
		Id:          uuid.New(),
		ProcedureId: request.ProcedureId,
		Role:        store.RoleUser,
		Content:     request.Answer,
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}
	if next != nil {
		if err := uow.InterviewTurnRepository().Create(ctx, &entity.InterviewTurn{
			Id:          uuid.New(),
			ProcedureId: request.ProcedureId,
			Role:        store.RoleAI,
			Content:     next.Question,
			CreatedAt:   now,
		}); err != nil {
			return nil, err
		}
	}
	if err := is.snapshotSession(ctx, uow, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if completed {
		is.publishCompleted(request.ProcedureId, session)
	}

	return &dto.SubmitAnswerResponse{
		NextQuestion:       questionDTO(next),
		InterviewCompleted: completed,
		Coverage:           statsDTO(session.Stats()),
		Topics:             topicDTOs(session.Topics),
	}, nil
}

// nextQuestion selects from the bank, regenerating a batch when the bank is
// exhausted and topping it up when it runs low. The first top-up after the
// opening questions asks for the large seed batch.
func (is *interviewService) nextQuestion(ctx context.Context, session *store.Session, procedureTitle, answer string) *store.Question {
	next := is.selector.SelectNext(session, answer)
	if next == nil {
		is.topUpBank(ctx, session, procedureTitle)
		next = is.selector.SelectNext(session, answer)
	}
	if next != nil && len(session.UnusedQuestions()) <= constant.LowBankThreshold {
		is.topUpBank(ctx, session, procedureTitle)
	}
	return next
}

func (is *interviewService) topUpBank(ctx context.Context, session *store.Session, procedureTitle string) {
	size := constant.FollowUpQuestionBatch
	if !session.BankSeeded {
		size = constant.InitialQuestionBatchSize
		session.BankSeeded = true
	}
	batch := is.generator.GenerateBatch(ctx, session, procedureTitle, size)
	session.BatchedQuestions = append(session.BatchedQuestions, batch...)
}

func (is *interviewService) GetCoverage(ctx context.Context, procedureId uuid.UUID) (*dto.GetCoverageResponse, error) {
	session, err := is.loadSession(ctx, procedureId)
	if err != nil {
		return nil, err
	}

	return &dto.GetCoverageResponse{
		ProcedureId:        procedureId,
		InterviewCompleted: session.InterviewCompleted,
		FirstOverviewGiven: session.FirstOverviewGiven,
		Coverage:           statsDTO(session.Stats()),
		Topics:             topicDTOs(session.Topics),
	}, nil
}

func (is *interviewService) GetTranscript(ctx context.Context, procedureId uuid.UUID) (*dto.GetTranscriptResponse, error) {
	uow := is.uowFactory.NewUnitOfWork(ctx)

	turns, err := uow.InterviewTurnRepository().FindAll(ctx,
		specification.ByProcedureID{ProcedureID: procedureId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.TranscriptEntryDTO, 0, len(turns))
	for _, t := range turns {
		entries = append(entries, dto.TranscriptEntryDTO{
			Role:      t.Role,
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
		})
	}

	return &dto.GetTranscriptResponse{
		ProcedureId: procedureId,
		Turns:       entries,
	}, nil
}

// EndInterview drops the live session after writing a final snapshot.
func (is *interviewService) EndInterview(ctx context.Context, request *dto.EndInterviewRequest) error {
	session, found := is.sessionRepo.Get(request.ProcedureId.String())
	if !found {
		return fmt.Errorf("interview session not found")
	}

	uow := is.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := is.snapshotSession(ctx, uow, session); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	is.sessionRepo.Delete(request.ProcedureId.String())
	return nil
}

// loadSession fetches the live session, restoring it from the durable
// snapshot after a process restart.
func (is *interviewService) loadSession(ctx context.Context, procedureId uuid.UUID) (*store.Session, error) {
	if session, found := is.sessionRepo.Get(procedureId.String()); found {
		return session, nil
	}

	uow := is.uowFactory.NewUnitOfWork(ctx)
	snapshot, err := uow.InterviewSnapshotRepository().FindOne(ctx,
		specification.ByProcedureID{ProcedureID: procedureId},
	)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, fmt.Errorf("interview session not found")
	}

	var session store.Session
	if err := json.Unmarshal(snapshot.State, &session); err != nil {
		return nil, fmt.Errorf("corrupt interview snapshot: %w", err)
	}

	is.logger.Info("InterviewService", "Restored session from snapshot", map[string]interface{}{"procedure_id": procedureId.String()})
	is.sessionRepo.Save(&session)
	return &session, nil
}

func (is *interviewService) snapshotSession(ctx context.Context, uow unitofwork.UnitOfWork, session *store.Session) error {
	state, err := json.Marshal(session)
	if err != nil {
		return err
	}
	procedureId, err := uuid.Parse(session.ProcedureId)
	if err != nil {
		return err
	}
	return uow.InterviewSnapshotRepository().Upsert(ctx, &entity.InterviewSnapshot{
		Id:          uuid.New(),
		ProcedureId: procedureId,
		State:       state,
		Completed:   session.InterviewCompleted,
		UpdatedAt:   time.Now(),
	})
}

// publishCompleted emits the completion event; the consumer writes the
// certification record. Publish failures are logged, not returned: the
// interview itself completed.
func (is *interviewService) publishCompleted(procedureId uuid.UUID, session *store.Session) {
	stats := session.Stats()
	event := dto.InterviewCompletedEvent{
		ProcedureId:     procedureId,
		TopicsTotal:     stats.TotalTopics,
		RequiredTopics:  stats.RequiredTopics,
		RequiredCovered: stats.RequiredCovered,
		QuestionsAsked:  stats.QuestionsAsked,
		CompletedAt:     time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		is.logger.Error("InterviewService", "Failed to marshal completion event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := is.pubSub.Publish(is.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		is.logger.Error("InterviewService", "Failed to publish completion event", map[string]interface{}{"error": err.Error()})
	}
}

func topicDTOs(ts []*store.Topic) []dto.TopicDTO {
	out := make([]dto.TopicDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, dto.TopicDTO{
			Id:            t.Id,
			Name:          t.Name,
			Category:      t.Category,
			Status:        t.Status,
			IsRequired:    t.IsRequired,
			Keywords:      t.Keywords,
			CoverageScore: t.CoverageScore,
		})
	}
	return out
}

func questionDTO(q *store.Question) *dto.QuestionDTO {
	if q == nil {
		return nil
	}
	return &dto.QuestionDTO{
		Id:       q.Id,
		Question: q.Question,
		Category: q.Category,
		Priority: q.Priority,
	}
}

// lastAskedQuestion rebuilds a question DTO from the most recent AI turn, for
// resuming an already-started interview.
func lastAskedQuestion(session *store.Session) *dto.QuestionDTO {
	for i := len(session.ConversationHistory) - 1; i >= 0; i-- {
		entry := session.ConversationHistory[i]
		if entry.Role == store.RoleAI {
			return &dto.QuestionDTO{Question: entry.Content}
		}
	}
	return nil
}

func statsDTO(stats store.CoverageStats) dto.CoverageStatsDTO {
	return dto.CoverageStatsDTO{
		TotalTopics:        stats.TotalTopics,
		RequiredTopics:     stats.RequiredTopics,
		ThoroughlyCovered:  stats.ThoroughlyCovered,
		BrieflyDiscussed:   stats.BrieflyDiscussed,
		NotDiscussed:       stats.NotDiscussed,
		RequiredCovered:    stats.RequiredCovered,
		QuestionsAsked:     stats.QuestionsAsked,
		QuestionsRemaining: stats.QuestionsRemaining,
	}
}
