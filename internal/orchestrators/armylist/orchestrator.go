// Package armylist implements the army list orchestrator: it imports lists
// from Army Forge, renders models and builds the bundle the tabletop mod
// loads.
package armylist

//go:generate mockgen -destination=mock/mock_service.go -package=armylistmock github.com/KirkDiggler/opr-tts-api/internal/orchestrators/armylist Service

import (
	"context"
	"time"

	"go.uber.org/zap"

	client "github.com/KirkDiggler/opr-tts-api/internal/clients/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/formatter"
	"github.com/KirkDiggler/opr-tts-api/internal/loadout"
	"github.com/KirkDiggler/opr-tts-api/internal/observability"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
	"github.com/KirkDiggler/opr-tts-api/internal/repositories/sharedlist"
	"github.com/KirkDiggler/opr-tts-api/internal/rules"
	"github.com/KirkDiggler/opr-tts-api/internal/store"
)

const errSessionRequired = "session is required"

// Service defines the army list operations
type Service interface {
	ImportArmyList(ctx context.Context, input *ImportArmyListInput) (*ImportArmyListOutput, error)
	ApplyEdits(ctx context.Context, input *ApplyEditsInput) (*ApplyEditsOutput, error)
	RenderModel(ctx context.Context, input *RenderModelInput) (*RenderModelOutput, error)
	BuildShareableOutput(ctx context.Context, input *BuildShareableOutputInput) (*BuildShareableOutputOutput, error)

	SaveShareableOutput(ctx context.Context, input *SaveShareableOutputInput) (*SaveShareableOutputOutput, error)
	GetSharedList(ctx context.Context, input *GetSharedListInput) (*GetSharedListOutput, error)

	// Convert imports a list and returns its bundle, saving it when asked
	Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error)
}

// Config holds the dependencies for the army list orchestrator
type Config struct {
	Client      client.Client
	IDGenerator idgen.Generator
	Logger      *zap.Logger
	Metrics     *observability.Metrics

	// Repository stores shared lists. Without it saving is unavailable.
	Repository sharedlist.Repository
	// ListTTL expires saved lists. Zero uses the repository default.
	ListTTL time.Duration
	// DefaultOutput is used when a call carries no output config
	DefaultOutput *entities.OutputConfig
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}
	if c.Metrics == nil {
		vb.RequiredField("Metrics")
	}
	if c.ListTTL < 0 {
		vb.Field("ListTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	client        client.Client
	repo          sharedlist.Repository
	ids           idgen.Generator
	normalizer    *loadout.Normalizer
	logger        *zap.Logger
	metrics       *observability.Metrics
	listTTL       time.Duration
	defaultOutput entities.OutputConfig
}

// NewOrchestrator creates a new army list orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	normalizer, err := loadout.NewNormalizer(&loadout.Config{IDGenerator: cfg.IDGenerator})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create normalizer")
	}

	defaultOutput := entities.DefaultOutputConfig()
	if cfg.DefaultOutput != nil {
		defaultOutput = *cfg.DefaultOutput
	}

	return &orchestrator{
		client:        cfg.Client,
		repo:          cfg.Repository,
		ids:           cfg.IDGenerator,
		normalizer:    normalizer,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		listTTL:       cfg.ListTTL,
		defaultOutput: defaultOutput,
	}, nil
}

func (o *orchestrator) ImportArmyList(ctx context.Context, input *ImportArmyListInput) (*ImportArmyListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	armyID, beta := input.ArmyID, input.Beta
	if armyID == "" {
		var err error
		armyID, beta, err = client.ParseShareLink(input.ShareLink)
		if err != nil {
			return nil, err
		}
	}

	session, err := o.importList(ctx, armyID, beta, input.Session, input.KeepUserModels)
	if err != nil {
		o.metrics.ImportsTotal.WithLabelValues("", observability.StatusError).Inc()
		o.logger.Error("army list import failed",
			zap.String("army_id", armyID),
			zap.Bool("beta", beta),
			zap.Error(err))
		return nil, err
	}

	o.metrics.ImportsTotal.WithLabelValues(session.GameSystem.String(), observability.StatusOK).Inc()
	o.logger.Info("army list imported",
		zap.String("army_id", armyID),
		zap.String("list_name", session.ListName),
		zap.String("game_system", session.GameSystem.String()),
		zap.Int("units", len(session.Store.Units())),
		zap.Int("rules", session.Dictionary.Len()))

	return &ImportArmyListOutput{Session: session}, nil
}

func (o *orchestrator) importList(ctx context.Context, armyID string, beta bool, existing *Session, keepUserModels bool) (*Session, error) {
	list, err := o.client.GetArmyList(ctx, armyID, beta)
	if err != nil {
		return nil, err
	}

	system := list.GameSystem
	if system == "" {
		system = armyforge.GameSystemGrimdarkFuture
	}
	if !system.IsValid() {
		return nil, errors.InvalidArgumentf("unsupported game system %q", system).
			WithMeta("army_id", armyID)
	}

	core, err := o.client.GetCommonRules(ctx, system)
	if err != nil {
		return nil, err
	}

	dictionary := rules.NewDictionary(core, list.SpecialRules)
	aggregator, err := rules.NewAggregator(&rules.Config{Dictionary: dictionary})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create aggregator")
	}
	f, err := formatter.New(&formatter.Config{Aggregator: aggregator})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create formatter")
	}

	var st *store.Store
	if existing != nil && existing.Store != nil {
		st = existing.Store
	} else {
		st, err = store.New(&store.Config{IDGenerator: o.ids})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create store")
		}
		keepUserModels = false
	}
	st.Replace(o.normalizer.BuildProfiles(list), keepUserModels)

	name := list.Name
	if name == "" {
		name = "UNDEFINED"
	}

	session := &Session{
		ListID:     armyID,
		ListName:   name,
		GameSystem: system,
		Store:      st,
		Dictionary: dictionary,
		formatter:  f,
	}
	if existing != nil {
		*existing = *session
		session = existing
	}
	return session, nil
}

func (o *orchestrator) RenderModel(_ context.Context, input *RenderModelInput) (*RenderModelOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument(errSessionRequired)
	}

	unit, err := input.Session.Store.Unit(input.UnitID)
	if err != nil {
		return nil, err
	}
	model, err := input.Session.Store.Model(input.UnitID, input.ModelID)
	if err != nil {
		return nil, err
	}

	out := o.render(input.Session, unit, model, o.outputConfig(input.OutputConfig))
	return &RenderModelOutput{Output: out}, nil
}

func (o *orchestrator) render(session *Session, unit *entities.UnitProfile, model *entities.ModelDefinition, cfg entities.OutputConfig) *formatter.Output {
	out := session.formatter.Format(unit, model, cfg)

	o.metrics.ModelsRendered.Inc()
	if len(out.MissingRules) > 0 {
		o.metrics.MissingRuleText.Add(float64(len(out.MissingRules)))
		o.logger.Debug("rule text missing",
			zap.String("list_id", session.ListID),
			zap.String("unit", unit.OriginalName),
			zap.Strings("rules", out.MissingRules))
	}
	return out
}

func (o *orchestrator) outputConfig(override *entities.OutputConfig) entities.OutputConfig {
	if override != nil {
		return *override
	}
	return o.defaultOutput
}

func (o *orchestrator) SaveShareableOutput(ctx context.Context, input *SaveShareableOutputInput) (*SaveShareableOutputOutput, error) {
	if input == nil || input.Output == nil {
		return nil, errors.InvalidArgument("output is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("saving lists is not configured")
	}

	created, err := o.repo.Create(ctx, sharedlist.CreateInput{List: input.Output, TTL: o.listTTL})
	o.metrics.SharedListsSaved.WithLabelValues(observability.StatusLabel(err)).Inc()
	if err != nil {
		o.logger.Error("failed to save shared list",
			zap.String("list_name", input.Output.ListName),
			zap.Error(err))
		return nil, errors.Wrap(err, "failed to save shared list")
	}

	o.logger.Info("shared list saved",
		zap.String("list_id", created.SharedList.ID),
		zap.String("list_name", input.Output.ListName),
		zap.Int("units", len(input.Output.Units)))

	return &SaveShareableOutputOutput{SharedList: created.SharedList}, nil
}

func (o *orchestrator) GetSharedList(ctx context.Context, input *GetSharedListInput) (*GetSharedListOutput, error) {
	if input == nil || input.ListID == "" {
		return nil, errors.InvalidArgument("list ID is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("saving lists is not configured")
	}

	got, err := o.repo.Get(ctx, sharedlist.GetInput{ID: input.ListID})
	o.metrics.SharedListsFetched.WithLabelValues(observability.StatusLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	return &GetSharedListOutput{SharedList: got.SharedList}, nil
}

func (o *orchestrator) Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	imported, err := o.ImportArmyList(ctx, &ImportArmyListInput{
		ShareLink: input.ShareLink,
		ArmyID:    input.ArmyID,
		Beta:      input.Beta,
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.ApplyEdits(ctx, &ApplyEditsInput{
		Session: imported.Session,
		Loadout: input.Loadout,
		Copies:  input.Copies,
	}); err != nil {
		return nil, err
	}

	built, err := o.BuildShareableOutput(ctx, &BuildShareableOutputInput{
		Session:      imported.Session,
		OutputConfig: input.OutputConfig,
	})
	if err != nil {
		return nil, err
	}

	out := &ConvertOutput{Output: built.Output}
	if !input.Save {
		return out, nil
	}

	saved, err := o.SaveShareableOutput(ctx, &SaveShareableOutputInput{Output: built.Output})
	if err != nil {
		return nil, err
	}
	out.SharedList = saved.SharedList

	return out, nil
}
