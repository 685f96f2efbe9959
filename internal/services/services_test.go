package services

import (
	"database/sql"
	"testing"

	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/migrations"
	"github.com/alimgiray/menuhub/pkg/database"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db               *sql.DB
	merchantRepo     *repositories.MerchantRepository
	openingHourRepo  *repositories.OpeningHourRepository
	modeScheduleRepo *repositories.ModeScheduleRepository
	specialHourRepo  *repositories.SpecialHourRepository
	userRepo         *repositories.UserRepository

	merchants     *MerchantService
	openingHours  *OpeningHourService
	modeSchedules *ModeScheduleService
	specialHours  *SpecialHourService
	status        *StoreStatusService
	export        *ScheduleExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(database.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, database.RunSQLScripts(db, migrations.FS))
	t.Cleanup(func() { db.Close() })

	env := &testEnv{
		db:               db,
		merchantRepo:     repositories.NewMerchantRepository(db),
		openingHourRepo:  repositories.NewOpeningHourRepository(db),
		modeScheduleRepo: repositories.NewModeScheduleRepository(db),
		specialHourRepo:  repositories.NewSpecialHourRepository(db),
		userRepo:         repositories.NewUserRepository(db),
	}
	env.merchants = NewMerchantService(env.merchantRepo)
	env.openingHours = NewOpeningHourService(env.openingHourRepo, env.merchantRepo)
	env.modeSchedules = NewModeScheduleService(env.modeScheduleRepo, env.merchantRepo)
	env.specialHours = NewSpecialHourService(env.specialHourRepo, env.merchantRepo)
	env.status = NewStoreStatusService(env.merchantRepo, env.openingHourRepo, env.modeScheduleRepo, env.specialHourRepo)
	env.export = NewScheduleExportService(env.merchantRepo, env.openingHourRepo, env.modeScheduleRepo, env.specialHourRepo)
	return env
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
