package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Disabled(t *testing.T) {
	assert.Nil(t, NewClient(nil))
	assert.Nil(t, NewClient(&config.InferenceConfig{}))
}

func TestClient_Predict(t *testing.T) {
	input := model.CheckInput{Pregnancies: 1, Glucose: 85, BloodPressure: 66, SkinThickness: 29, BMI: 26.6, DiabetesPedigree: 0.351, Age: 31}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Features map[string]float64 `json:"features"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 85.0, body.Features["glucose"])
		assert.Equal(t, 31.0, body.Features["age"])

		_, _ = w.Write([]byte(`{"probability": 0.18, "label": "low"}`))
	}))
	defer srv.Close()

	client := NewClient(&config.InferenceConfig{URL: srv.URL, Timeout: time.Second})
	prediction, err := client.Predict(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 0.18, prediction.Probability)
	assert.Equal(t, "low", prediction.Label)
}

func TestClient_PredictFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "server error", status: http.StatusInternalServerError, payload: `{}`},
		{name: "probability above one", status: http.StatusOK, payload: `{"probability": 1.5, "label": "high"}`},
		{name: "negative probability", status: http.StatusOK, payload: `{"probability": -0.1, "label": "low"}`},
		{name: "missing probability", status: http.StatusOK, payload: `{"label": "low"}`},
		{name: "broken json", status: http.StatusOK, payload: `{"probability":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			_, err := NewClient(&config.InferenceConfig{URL: srv.URL}).Predict(context.Background(), model.CheckInput{})
			assert.Error(t, err)
		})
	}
}

func TestClient_PredictTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(&config.InferenceConfig{URL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := client.Predict(context.Background(), model.CheckInput{})
	assert.Error(t, err)
}
