//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"room-booking/cmd/bootstrap"
	"room-booking/cmd/bootstrap/components"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Now is the wall clock seen by every application built for e2e tests.
var Now = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

// ------------------------------------------------------------
// Application wiring
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(clk clock.Clock) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),
		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// Shared suite: a fresh application (and therefore an empty store) per subtest
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	Clock  *clock.MockClock
	app    *fx.App
}

func (s *SharedSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.reset(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.reset(s.T())
}

func (s *SharedSuite) TearDownTest() {
	s.stop()
}

func (s *SharedSuite) reset(t *testing.T) {
	s.stop()

	s.Clock = clock.NewMockClock(Now)
	router, cfg, app := buildE2EApp(s.Clock)
	require.NotNil(t, router, "router setup failed")

	s.Router = router
	s.Config = cfg
	s.app = app
}

func (s *SharedSuite) stop() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx application", "error", err.Error())
	}
	s.app = nil
}
