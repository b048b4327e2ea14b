package application

import (
	"encoding/json"
	"fmt"
	"strings"
)

const generateFormPrompt = `Create a Korean survey form from the user's request below. Return only valid JSON, no prose.
Format:
{
  "title": "Survey Title",
  "description": "Survey Description",
  "questions": [
    {
      "id": "q1",
      "label": "Question text",
      "type": "text|textarea|number|radio|checkbox|select",
      "required": true,
      "options": ["only for radio, checkbox and select"]
    }
  ]
}
Request: %s`

const counselingFormPrompt = `%s
위의 상담 스크립트를 기반으로 온라인 설문 폼을 만들어주세요.
각 질문을 적절한 입력 타입(text, textarea, radio, checkbox, select)으로 변환하고,
학생들이 쉽게 답할 수 있도록 옵션을 제공해주세요.
JSON 형태로 반환해주세요:
{
  "title": "%s",
  "description": "%s",
  "fields": [
    {
      "id": "field_id",
      "label": "질문 내용",
      "type": "text|textarea|radio|checkbox|select",
      "required": true,
      "options": ["옵션1", "옵션2"]
    }
  ]
}
options는 radio, checkbox, select일 때만 포함해주세요.
`

const analysisPrompt = `다음 설문 응답들을 분석하여 한국어로 상세한 분석 결과를 제공해주세요.

설문 제목: %s
설문 설명: %s

응답 데이터:
%s

다음 형식의 JSON으로 응답해주세요:
{
  "summary": "전체적인 응답 요약 (2-3문장)",
  "insights": ["주요 인사이트 1", "주요 인사이트 2", "주요 인사이트 3"],
  "statistics": {
    "총 응답 수": %d,
    "주요 통계": "구체적인 수치나 비율"
  },
  "recommendations": ["개선 제안 1", "개선 제안 2", "개선 제안 3"],
  "detailedAnalysis": {
    "긍정적 피드백": "긍정적인 응답들에 대한 분석",
    "개선 필요 영역": "개선이 필요한 부분들",
    "특이사항": "특별히 주목할 만한 응답들"
  }
}`

const adHocAnalystPrompt = "You are an analyst. Given survey responses, produce strictly JSON with keys: " +
	"key_insights (array of strings), summary (string), stats (object with aggregates per question). " +
	"Output valid JSON only."

func buildGenerateFormPrompt(request string) string {
	return fmt.Sprintf(generateFormPrompt, request)
}

func buildCounselingPrompt(script *CounselingScript, extra string) string {
	p := fmt.Sprintf(counselingFormPrompt, script.Text(), script.Title, script.Description)
	if extra = strings.TrimSpace(extra); extra != "" {
		p += "추가 요구사항: " + extra + "\n"
	}
	return p
}

func buildAnalysisPrompt(title, description string, responses any, total int) (string, error) {
	if description == "" {
		description = "설명 없음"
	}
	data, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(analysisPrompt, title, description, data, total), nil
}

func buildAdHocPrompt(formTitle string, responses []map[string]any, instructions string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"formTitle":    formTitle,
		"responses":    responses,
		"instructions": instructions,
	})
	if err != nil {
		return "", err
	}
	return adHocAnalystPrompt + "\n\n" + string(payload), nil
}
