package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/autism-support-api/internal/apierr"
	"github.com/iliyamo/autism-support-api/internal/request"
)

const profileID = "7b1e5c3a-2f4d-4e8a-9c1b-3d5e7f9a1b2c"

func ptr[T any](v T) *T { return &v }

// fieldsOf asserts err is a validation error and returns its field errors.
func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var e *apierr.Error
	require.True(t, errors.As(err, &e), "want *apierr.Error, got %v", err)
	require.Equal(t, apierr.ValidationFailed, e.Kind)
	out := map[string]string{}
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidRequestsPass(t *testing.T) {
	v := New()
	valid := []any{
		request.Login{Email: "admin@autismo.com", Password: "123456"},
		request.CreateProfile{Name: "Ana", Age: ptr(0), SupportLevel: "moderado", DiagnosisDate: ptr("2020-03-15")},
		request.CreateRoutine{ProfileID: profileID, Title: "Escovar os dentes", Time: ptr("23:59"), DayOfWeek: ptr("sábado")},
		request.CreateSensoryPreference{ProfileID: profileID, SoundSensitivity: "alta", LightSensitivity: "média", TouchSensitivity: "baixa"},
		request.CreateMeltdown{ProfileID: profileID, Trigger: "barulho", Intensity: ptr(5), OccurredAt: "2024-12-29T10:00:00.000Z"},
		request.CreateActivity{ProfileID: profileID, Name: "Musicoterapia", DurationMinutes: ptr(45)},
		request.CreateCommunication{ProfileID: profileID, Phrase: "Quero água", Meaning: "sede", Category: "necessidade"},
		request.UpdateRoutine{},
		request.UpdateProfile{Age: ptr(12)},
		request.MeltdownQuery{StartDate: "2024-12-01", EndDate: "2024-12-31T23:59:59Z"},
	}
	for _, in := range valid {
		assert.NoError(t, v.Validate(in), "%T", in)
	}
}

func TestRoutineTimeRejected(t *testing.T) {
	v := New()
	for _, bad := range []string{"25:00", "24:00", "12:60", "9:30", "", "12h30"} {
		err := v.Validate(request.CreateRoutine{ProfileID: profileID, Title: "t", Time: ptr(bad)})
		fields := fieldsOf(t, err)
		assert.Equal(t, "Horário deve estar no formato HH:mm", fields["time"], bad)
		assert.Len(t, fields, 1)
	}
}

func TestAllFailuresReported(t *testing.T) {
	err := New().Validate(request.CreateMeltdown{ProfileID: "not-a-uuid", Intensity: ptr(6), OccurredAt: "ontem"})
	fields := fieldsOf(t, err)

	assert.Equal(t, map[string]string{
		"profileId":  "profileId deve ser um UUID válido",
		"trigger":    "Gatilho é obrigatório",
		"intensity":  "Intensidade deve estar entre 1 e 5",
		"occurredAt": "occurredAt deve ser uma data válida",
	}, fields)
}

func TestMissingRequiredNumbers(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Validate(request.CreateProfile{Name: "Ana", SupportLevel: "leve"}))
	assert.Equal(t, "Idade deve ser um número inteiro positivo", fields["age"])

	fields = fieldsOf(t, v.Validate(request.CreateActivity{ProfileID: profileID, Name: "x", DurationMinutes: ptr(0)}))
	assert.Equal(t, "Duração deve ser um número inteiro positivo", fields["durationMinutes"])
}

func TestEnumsUseWireLiterals(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Validate(request.CreateProfile{Name: "Ana", Age: ptr(3), SupportLevel: "high"}))
	assert.Equal(t, "Nível de suporte deve ser: leve, moderado ou alto", fields["supportLevel"])

	fields = fieldsOf(t, v.Validate(request.CreateSensoryPreference{
		ProfileID: profileID, SoundSensitivity: "media", LightSensitivity: "alta", TouchSensitivity: "baixa",
	}))
	assert.Equal(t, map[string]string{"soundSensitivity": "Sensibilidade ao som deve ser: baixa, média ou alta"}, fields)

	fields = fieldsOf(t, v.Validate(request.CreateCommunication{ProfileID: profileID, Phrase: "a", Meaning: "b", Category: "emocao"}))
	assert.Equal(t, "Categoria deve ser: necessidade, emoção, dor ou lazer", fields["category"])
}

func TestUpdateRejectsEmptyValues(t *testing.T) {
	fields := fieldsOf(t, New().Validate(request.UpdateCommunication{Phrase: ptr(""), Category: ptr("dor")}))
	assert.Equal(t, map[string]string{"phrase": "Frase não pode estar vazia"}, fields)
}

func TestMeltdownQueryDates(t *testing.T) {
	fields := fieldsOf(t, New().Validate(request.MeltdownQuery{StartDate: "amanhã"}))
	assert.Equal(t, "startDate deve ser uma data válida", fields["startDate"])
}

func TestID(t *testing.T) {
	v := New()
	for _, in := range []string{profileID, strings.ToUpper(profileID)} {
		id, err := v.ID(in)
		require.NoError(t, err)
		assert.Equal(t, profileID, id)
	}
	for _, bad := range []string{"", "123", "7b1e5c3a2f4d4e8a9c1b3d5e7f9a1b2c"} {
		_, err := v.ID(bad)
		fields := fieldsOf(t, err)
		assert.Equal(t, MsgInvalidID, fields["id"])
	}
}

func TestFieldMessageForTypeErrors(t *testing.T) {
	var body request.CreateSensoryPreference
	err := json.Unmarshal([]byte(`{"foodRestrictions":"glúten"}`), &body)
	var te *json.UnmarshalTypeError
	require.True(t, errors.As(err, &te))

	assert.Equal(t, "Restrições alimentares deve ser um array", FieldMessage(&body, te.Field))
	assert.Equal(t, "unknown inválido", FieldMessage(&body, "unknown"))
	assert.Equal(t, "x inválido", FieldMessage(42, "x"))
}

func TestNonStructInput(t *testing.T) {
	err := New().Validate(42)
	var e *apierr.Error
	assert.False(t, errors.As(err, &e), "programming errors are not validation failures")
	assert.Error(t, err)
}
