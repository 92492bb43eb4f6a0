package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"zyglio-be/internal/entity"
	"zyglio-be/internal/repository/specification"
	"zyglio-be/internal/repository/unitofwork"
	"zyglio-be/pkg/database"
	"zyglio-be/pkg/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ProcedureRepository())
	assert.NotNil(t, uow.InterviewTurnRepository())
	assert.NotNil(t, uow.CertificationRepository())
	assert.NotNil(t, uow.InterviewSnapshotRepository())
	assert.NotNil(t, uow.ReferenceChunkRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Procedure Repository", func(t *testing.T) {
		procedures, err := uow.ProcedureRepository().FindAll(context.Background(), specification.NotDeleted{})
		assert.NoError(t, err)
		t.Logf("Procedure count: %d", len(procedures))
	})

	t.Run("Check Transactional Interview Persistence", func(t *testing.T) {
		ctx := context.Background()

		procedureId := uuid.New()
		procedure := &entity.Procedure{
			Id:        procedureId,
			Title:     "Integration Test Procedure " + uuid.New().String(),
			Industry:  "testing",
			CreatedAt: time.Now(),
		}

		err := uow.ProcedureRepository().Create(ctx, procedure)
		assert.NoError(t, err)

		// Transaction Test: turn + snapshot land together
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		err = uow.InterviewTurnRepository().Create(ctx, &entity.InterviewTurn{
			Id:          uuid.New(),
			ProcedureId: procedureId,
			Role:        store.RoleAI,
			Content:     "Can you walk me through the procedure from start to finish?",
			CreatedAt:   time.Now(),
		})
		assert.NoError(t, err)

		err = uow.InterviewSnapshotRepository().Upsert(ctx, &entity.InterviewSnapshot{
			Id:          uuid.New(),
			ProcedureId: procedureId,
			State:       []byte(`{"procedure_id":"` + procedureId.String() + `"}`),
			Completed:   false,
			UpdatedAt:   time.Now(),
		})
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Upsert again outside the transaction: same procedure must not violate
		// the unique index.
		err = uow.InterviewSnapshotRepository().Upsert(ctx, &entity.InterviewSnapshot{
			Id:          uuid.New(),
			ProcedureId: procedureId,
			State:       []byte(`{"procedure_id":"` + procedureId.String() + `","questions_asked":1}`),
			Completed:   false,
			UpdatedAt:   time.Now(),
		})
		assert.NoError(t, err)

		snapshot, err := uow.InterviewSnapshotRepository().FindOne(ctx,
			specification.ByProcedureID{ProcedureID: procedureId},
		)
		assert.NoError(t, err)
		assert.NotNil(t, snapshot)

		t.Log("Successfully created Interview Turn and Snapshot in Transaction")
	})
}
