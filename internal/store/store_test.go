package store_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/loadout"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
	"github.com/KirkDiggler/opr-tts-api/internal/store"
	"github.com/KirkDiggler/opr-tts-api/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	normalizer *loadout.Normalizer
	store      *store.Store
	unit       *entities.UnitProfile
	model      *entities.ModelDefinition
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	n, err := loadout.NewNormalizer(&loadout.Config{IDGenerator: idgen.NewSequential("imp")})
	s.Require().NoError(err)
	s.normalizer = n

	st, err := store.New(&store.Config{IDGenerator: idgen.NewSequential("dup")})
	s.Require().NoError(err)
	s.store = st

	s.store.Replace(s.normalizer.BuildProfiles(testutils.ArmyList()), false)
	s.unit = s.store.Units()[0]
	s.model = s.unit.Models[0]
}

func (s *StoreTestSuite) TestNewValidation() {
	_, err := store.New(nil)
	s.Error(err)
	_, err = store.New(&store.Config{})
	s.Error(err)
}

func (s *StoreTestSuite) TestLookups() {
	u, err := s.store.Unit(s.unit.ID)
	s.Require().NoError(err)
	s.Same(s.unit, u)

	_, err = s.store.Unit("nope")
	s.True(errors.IsNotFound(err))

	m, err := s.store.Model(s.unit.ID, s.model.ID)
	s.Require().NoError(err)
	s.Same(s.model, m)

	_, err = s.store.Model(s.unit.ID, "nope")
	s.True(errors.IsNotFound(err))

	s.Equal(1, s.store.UnitIndex(testutils.SelectionBattleBrothers))
	s.Equal(2, s.store.UnitIndex(testutils.SelectionCaptain))
	s.Equal(0, s.store.UnitIndex("missing"))
	s.Nil(s.store.UnitBySelection(""))
}

func (s *StoreTestSuite) TestQuantityZeroUnsetsIncludeInName() {
	entry := s.model.Loadout[0]
	s.Require().NoError(s.store.UpdateLoadoutIncludeInName(s.unit.ID, s.model.ID, entry.ID, true))
	s.True(entry.IncludeInName)

	s.Require().NoError(s.store.UpdateLoadoutQuantity(s.unit.ID, s.model.ID, entry.ID, 0))
	s.False(entry.IncludeInName)

	s.Require().NoError(s.store.UpdateLoadoutQuantity(s.unit.ID, s.model.ID, entry.ID, 3))
	s.Equal(3, entry.Quantity)
	s.False(entry.IncludeInName)
}

func (s *StoreTestSuite) TestIncludeInNameRequiresEquipped() {
	entry := s.model.Loadout[0]
	s.Require().NoError(s.store.UpdateLoadoutQuantity(s.unit.ID, s.model.ID, entry.ID, 0))

	err := s.store.UpdateLoadoutIncludeInName(s.unit.ID, s.model.ID, entry.ID, true)

	s.True(errors.IsFailedPrecondition(err))
	s.False(entry.IncludeInName)
}

func (s *StoreTestSuite) TestNegativeQuantityRejected() {
	entry := s.model.Loadout[0]
	err := s.store.UpdateLoadoutQuantity(s.unit.ID, s.model.ID, entry.ID, -1)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(1, entry.Quantity)
}

func (s *StoreTestSuite) TestUnknownEntry() {
	err := s.store.UpdateLoadoutQuantity(s.unit.ID, s.model.ID, "nope", 1)
	s.True(errors.IsNotFound(err))
	err = s.store.UpdateLoadoutIncludeInName(s.unit.ID, "nope", "nope", false)
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestDuplicateModel() {
	dup, err := s.store.DuplicateModel(s.unit.ID, s.model.ID)
	s.Require().NoError(err)

	s.Len(s.unit.Models, 2)
	s.Same(dup, s.unit.Models[1])
	s.False(dup.IsGenerated)
	s.Equal("dup_1", dup.ID)
	for i := range dup.Loadout {
		s.NotEqual(s.model.Loadout[i].ID, dup.Loadout[i].ID)
	}

	s.Require().NoError(s.store.UpdateLoadoutQuantity(s.unit.ID, dup.ID, dup.Loadout[0].ID, 0))
	s.Equal(1, s.model.Loadout[0].Quantity, "original untouched")

	_, err = s.store.DuplicateModel(s.unit.ID, "nope")
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestDeleteModel() {
	dup, err := s.store.DuplicateModel(s.unit.ID, s.model.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteModel(s.unit.ID, s.model.ID))
	s.Require().Len(s.unit.Models, 1)
	s.Same(dup, s.unit.Models[0])

	s.Require().NoError(s.store.DeleteModel(s.unit.ID, dup.ID), "last model may go")
	s.Empty(s.unit.Models)

	s.True(errors.IsNotFound(s.store.DeleteModel(s.unit.ID, dup.ID)))
}

func (s *StoreTestSuite) TestReplaceDiscardsByDefault() {
	_, err := s.store.DuplicateModel(s.unit.ID, s.model.ID)
	s.Require().NoError(err)

	s.store.Replace(s.normalizer.BuildProfiles(testutils.ArmyList()), false)

	for _, u := range s.store.Units() {
		s.Len(u.Models, 1)
		s.True(u.Models[0].IsGenerated)
	}
	_, err = s.store.Unit(s.unit.ID)
	s.True(errors.IsNotFound(err), "old unit ids are gone")
}

func (s *StoreTestSuite) TestReplaceCanKeepUserModels() {
	dup, err := s.store.DuplicateModel(s.unit.ID, s.model.ID)
	s.Require().NoError(err)

	s.store.Replace(s.normalizer.BuildProfiles(testutils.ArmyList()), true)

	bb := s.store.UnitBySelection(testutils.SelectionBattleBrothers)
	s.Require().NotNil(bb)
	s.Require().Len(bb.Models, 2)
	s.True(bb.Models[0].IsGenerated)
	s.NotEqual(s.model.ID, bb.Models[0].ID)
	s.Same(dup, bb.Models[1])
}
