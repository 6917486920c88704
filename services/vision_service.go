package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel          = "gemini-2.0-flash"

	visionSystemPrompt = "Sen bir beslenme uzmanısın. Yemek fotoğraflarını analiz ederek yemek adını, tahmini porsiyon miktarını ve besin değerlerini tahmin ediyorsun."

	visionPrompt = `Bu görseldeki yemeği analiz et ve aşağıdaki bilgileri JSON formatında ver:
{
  "food_name": "yemek adı (Türkçe)",
  "portion_size": "tahmini porsiyon (örn: '1 porsiyon', 'yarım porsiyon', 'çeyrek ekmek', '2 dilim', '100 gram', vb.)",
  "calories": tahmini kalori sayısı (sayı),
  "protein": protein gramı (sayı),
  "carbs": karbonhidrat gramı (sayı),
  "fat": yağ gramı (sayı)
}

Sadece JSON formatında cevap ver, başka açıklama ekleme.`
)

// VisionService sends meal photos to the Gemini multimodal API and parses
// the structured estimate back. Calls are synchronous with a bounded
// timeout; failures are not retried.
type VisionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewVisionService() *VisionService {
	baseURL := os.Getenv("GEMINI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &VisionService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FoodAnalysis is the model's estimate for one photographed meal.
type FoodAnalysis struct {
	FoodName    string  `json:"food_name"`
	PortionSize string  `json:"portion_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"system_instruction"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeImage submits a base64-encoded photo and returns the parsed
// estimate. Any transport, parse or missing-field failure surfaces as
// ErrAnalysis.
func (v *VisionService) AnalyzeImage(imageBase64, mimeType string) (*FoodAnalysis, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	payload := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: visionSystemPrompt}}},
		Contents: []geminiContent{{Parts: []geminiPart{
			{InlineData: &geminiInlineData{MimeType: mimeType, Data: imageBase64}},
			{Text: visionPrompt},
		}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", v.baseURL, geminiModel, v.apiKey)
	resp, err := v.client.Post(u, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gemini API error %d", ErrAnalysis, resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty model response", ErrAnalysis)
	}

	return parseAnalysis(gr.Candidates[0].Content.Parts[0].Text)
}

// parseAnalysis decodes the model's JSON answer, tolerating a wrapping
// markdown code fence.
func parseAnalysis(text string) (*FoodAnalysis, error) {
	text = stripCodeFence(text)

	var raw struct {
		FoodName    string   `json:"food_name"`
		PortionSize string   `json:"portion_size"`
		Calories    *float64 `json:"calories"`
		Protein     float64  `json:"protein"`
		Carbs       float64  `json:"carbs"`
		Fat         float64  `json:"fat"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	if raw.FoodName == "" || raw.PortionSize == "" || raw.Calories == nil {
		return nil, fmt.Errorf("%w: missing required field", ErrAnalysis)
	}

	return &FoodAnalysis{
		FoodName:    raw.FoodName,
		PortionSize: raw.PortionSize,
		Calories:    *raw.Calories,
		Protein:     raw.Protein,
		Carbs:       raw.Carbs,
		Fat:         raw.Fat,
	}, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
