package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/pkg/jsonx"
)

func floatSet(v float64) jsonx.Float { return jsonx.Float{Set: true, Valid: true, Value: v} }

func floatNull() jsonx.Float { return jsonx.Float{Set: true} }

func stringSet(v string) jsonx.String { return jsonx.String{Set: true, Valid: true, Value: v} }

func stringNull() jsonx.String { return jsonx.String{Set: true} }

func listSet(v []string) jsonx.StringList {
	return jsonx.StringList{Set: true, Valid: true, Value: v}
}

func TestApplyBodyPatch_Defaults(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())

	assert.Equal(t, float64(100), profile.Height)
	assert.Equal(t, float64(100), profile.Width)
	assert.Equal(t, float64(0), profile.Build)
	assert.Equal(t, float64(100), profile.Head)
	assert.Equal(t, "cm", profile.MeasurementUnit)
	assert.Equal(t, "[]", profile.Patterns)
	assert.Equal(t, "{}", profile.FabricTypes)
	assert.Nil(t, profile.Chest)
}

func TestApplyBodyPatch_PreservesUntouchedFields(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())
	chest := 90.0
	profile.Chest = &chest

	err := applyBodyPatch(profile, dto.BodyProfilePatch{Waist: floatSet(70)})
	require.NoError(t, err)

	require.NotNil(t, profile.Chest)
	assert.Equal(t, 90.0, *profile.Chest)
	require.NotNil(t, profile.Waist)
	assert.Equal(t, 70.0, *profile.Waist)
}

func TestApplyBodyPatch_Idempotent(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())
	patch := dto.BodyProfilePatch{
		Height:   floatSet(150),
		Waist:    floatSet(70),
		Gender:   stringSet("female"),
		Patterns: listSet([]string{"floral"}),
	}

	require.NoError(t, applyBodyPatch(profile, patch))
	first := *profile
	require.NoError(t, applyBodyPatch(profile, patch))

	assert.Equal(t, first.Height, profile.Height)
	assert.Equal(t, *first.Waist, *profile.Waist)
	assert.Equal(t, *first.Gender, *profile.Gender)
	assert.Equal(t, first.Patterns, profile.Patterns)
}

func TestApplyBodyPatch_ScalarRejectsNull(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())

	err := applyBodyPatch(profile, dto.BodyProfilePatch{Height: floatNull()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height must be a number")
	// Nothing applied.
	assert.Equal(t, float64(100), profile.Height)
}

func TestApplyBodyPatch_MeasurementClearsOnNull(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())
	chest := 90.0
	profile.Chest = &chest

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{Chest: floatNull()}))
	assert.Nil(t, profile.Chest)
}

func TestApplyBodyPatch_GenderClearsOnEmptyString(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())
	gender := "female"
	profile.Gender = &gender

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{Gender: stringSet("  ")}))
	assert.Nil(t, profile.Gender)

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{Gender: stringSet(" male ")}))
	require.NotNil(t, profile.Gender)
	assert.Equal(t, "male", *profile.Gender)

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{Gender: stringNull()}))
	assert.Nil(t, profile.Gender)
}

func TestApplyBodyPatch_CollectionsAreFullReplacements(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{
		Patterns: listSet([]string{"floral", "striped"}),
	}))
	assert.Equal(t, []string{"floral", "striped"}, jsonx.DecodeList(profile.Patterns))

	// Not a merge: the second patch wins outright.
	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{
		Patterns: listSet([]string{"polka"}),
	}))
	assert.Equal(t, []string{"polka"}, jsonx.DecodeList(profile.Patterns))

	// Null stores the empty collection.
	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{
		Patterns: jsonx.StringList{Set: true},
	}))
	assert.Equal(t, "[]", profile.Patterns)
}

func TestApplyBodyPatch_FabricTypes(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{
		FabricTypes: jsonx.StringMap{Set: true, Valid: true, Value: map[string]string{"top": "silk"}},
	}))
	assert.Equal(t, map[string]string{"top": "silk"}, jsonx.DecodeMap(profile.FabricTypes))

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{
		FabricTypes: jsonx.StringMap{Set: true},
	}))
	assert.Equal(t, "{}", profile.FabricTypes)
}

func TestApplyBodyPatch_MeasurementUnit(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{
		MeasurementUnit: stringSet("inches"),
	}))
	assert.Equal(t, "inches", profile.MeasurementUnit)

	err := applyBodyPatch(profile, dto.BodyProfilePatch{MeasurementUnit: stringSet("feet")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "measurement_unit")
	// Invalid unit leaves the stored one alone.
	assert.Equal(t, "inches", profile.MeasurementUnit)
}

func TestResetToDefaults(t *testing.T) {
	accountID := uuid.New()
	profile := model.NewBodyProfile(accountID)
	profile.ID = uuid.New()

	require.NoError(t, applyBodyPatch(profile, dto.BodyProfilePatch{
		Height:          floatSet(150),
		Waist:           floatSet(70),
		Gender:          stringSet("female"),
		Age:             jsonx.Int{Set: true, Valid: true, Value: 30},
		Patterns:        listSet([]string{"floral"}),
		MeasurementUnit: stringSet("inches"),
	}))

	id := profile.ID
	profile.ResetToDefaults()

	assert.Equal(t, id, profile.ID)
	assert.Equal(t, accountID, profile.AccountID)
	assert.Equal(t, float64(100), profile.Height)
	assert.Nil(t, profile.Waist)
	assert.Nil(t, profile.Gender)
	assert.Nil(t, profile.Age)
	assert.Equal(t, "[]", profile.Patterns)
	assert.Equal(t, "cm", profile.MeasurementUnit)
}

func TestNewBodyProfileResponse_DecodesCollections(t *testing.T) {
	profile := model.NewBodyProfile(uuid.New())
	profile.ID = uuid.New()
	profile.Patterns = `["floral"]`
	profile.FabricTypes = `{"top":"silk"}`

	resp := dto.NewBodyProfileResponse(profile)

	require.NotNil(t, resp.ID)
	assert.Equal(t, []string{"floral"}, resp.Patterns)
	assert.Equal(t, map[string]string{"top": "silk"}, resp.FabricTypes)
}

func TestDefaultBodyProfileResponse_OmitsIdentity(t *testing.T) {
	resp := dto.DefaultBodyProfileResponse()

	assert.Nil(t, resp.ID)
	assert.Nil(t, resp.AccountID)
	assert.Nil(t, resp.CreatedAt)
	assert.Equal(t, float64(100), resp.Height)
	assert.Equal(t, "cm", resp.MeasurementUnit)
	assert.Equal(t, []string{}, resp.Patterns)
}
