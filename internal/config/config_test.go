package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/opr-tts-api/internal/config"
	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	cfg := config.Default()
	s.NoError(cfg.Validate())
	s.Equal(entities.DefaultOutputConfig(), cfg.Output)
}

func (s *ConfigTestSuite) TestLoadWithoutFile() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(8080, cfg.Server.Port)
	s.Equal("info", cfg.Observability.LogLevel)
}

func (s *ConfigTestSuite) TestLoadValid() {
	cfg, err := config.Load("testdata/valid.yaml")
	s.Require().NoError(err)

	s.Equal(9090, cfg.Server.Port)
	s.Equal(5*time.Second, cfg.Server.ReadTimeout)
	s.Equal(30*time.Second, cfg.Server.WriteTimeout, "unset fields keep defaults")
	s.Equal("redis.internal:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal(168*time.Hour, cfg.Redis.ListTTL)
	s.Equal(10*time.Minute, cfg.ArmyForge.RulesCacheTTL)
	s.Equal("debug", cfg.Observability.LogLevel)

	s.True(cfg.Output.IncludeCampaignXP)
	s.False(cfg.Output.IncludeWeaponsListInName)
	s.True(cfg.Output.IncludeSpecialRulesListInName)
	s.Equal("#ff0000", cfg.Output.ToughColour)
}

func (s *ConfigTestSuite) TestLoadInvalid() {
	_, err := config.Load("testdata/invalid.yaml")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "server.port")
	s.Contains(err.Error(), "observability.log_level")
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := config.Load("testdata/nonexistent.yaml")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestEnvOverrides() {
	s.T().Setenv("OPRTTS_SERVER_PORT", "7070")
	s.T().Setenv("OPRTTS_REDIS_ADDR", "cache:6380")
	s.T().Setenv("OPRTTS_REDIS_USE_TLS", "true")
	s.T().Setenv("OPRTTS_OBSERVABILITY_LOG_LEVEL", "warn")

	cfg, err := config.Load("testdata/valid.yaml")
	s.Require().NoError(err)
	s.Equal(7070, cfg.Server.Port)
	s.Equal("cache:6380", cfg.Redis.Addr)
	s.True(cfg.Redis.UseTLS)
	s.Equal("warn", cfg.Observability.LogLevel)
}

func (s *ConfigTestSuite) TestEnvOverrideRejectsBadPort() {
	s.T().Setenv("OPRTTS_SERVER_PORT", "eighty")

	_, err := config.Load("")
	s.True(errors.IsInvalidArgument(err))
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
