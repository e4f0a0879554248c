// Package services содержит ассистента витрины с заготовленными ответами.
// Перед ответом выдерживается пауза "набора текста": базовая задержка плюс
// случайный разброс. Источник случайности и задержка передаются снаружи,
// поэтому в тестах ожидания нет.
package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const defaultReply = "That's a great question! I'd recommend exploring our catalog or using the Use Case Navigator for personalized data product recommendations. Is there anything specific you're looking for?"

// cannedReplies заготовленные ответы по точному тексту вопроса.
var cannedReplies = map[string]string{
	"find healthcare data":      "I recommend our Healthcare Professional Database with 820K+ HCP records, 93% confidence score, covering NHS and private sector. Would you like to explore it?",
	"compare telecom datasets":  "You can compare up to 3 products using our Compare feature. I suggest starting with UK Decision Maker Tele Data — it has 2.8M TPS-screened contacts.",
	"what is soho data?":        "SOHO stands for Small Office/Home Office. Our SOHO dataset includes 5.5M+ sole traders, freelancers, and micro-businesses (1-9 employees) across the UK.",
	"show compliance info":      "All our data products are GDPR compliant, ICO registered, and regularly audited. Visit our Trust Center for full details on HIPAA, CCPA, and ISO 27001 certifications.",
	"best data for lead gen":    "For lead generation, I recommend combining our B2B Email Database (97% confidence) with Postal Data for multi-channel outreach. Use the Use Case Navigator for personalized recommendations.",
}

// AssistantService отвечает на вопросы посетителей заготовленными репликами.
type AssistantService struct {
	baseDelay time.Duration
	mu        sync.Mutex
	rnd       *rand.Rand
}

// NewAssistantService создает новый экземпляр AssistantService.
func NewAssistantService(baseDelay time.Duration, rnd *rand.Rand) *AssistantService {
	return &AssistantService{baseDelay: baseDelay, rnd: rnd}
}

// Ask возвращает ответ на вопрос после паузы набора текста. Ключ поиска —
// вопрос в нижнем регистре без крайних пробелов; незнакомый вопрос получает
// общий ответ. Отмена контекста прекращает ожидание.
func (s *AssistantService) Ask(ctx context.Context, text string) (string, error) {
	const op = "assistant.Ask"

	s.mu.Lock()
	jitter := time.Duration(s.rnd.Intn(800)) * time.Millisecond
	s.mu.Unlock()

	if delay := s.baseDelay + jitter; delay > 0 && s.baseDelay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", fmt.Errorf("%s: %w", op, ctx.Err())
		}
	}

	key := strings.ToLower(strings.TrimSpace(text))
	if reply, ok := cannedReplies[key]; ok {
		return reply, nil
	}
	return defaultReply, nil
}
