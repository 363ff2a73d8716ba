package notifier

import (
	"fmt"
	"strings"
	"time"

	"HomeworkSentinel/internal/model"
	"HomeworkSentinel/internal/review"
)

// FormatDigest renders the current review state into a dated digest message.
// Unlike the change notifications, the digest lists every record on the page.
func FormatDigest(page *model.StatusPage) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 Сводка по домашним работам | %s\n\n", time.Now().Format("2006-01-02")))

	if len(page.Homeworks) == 0 {
		b.WriteString(review.NoUpdates)
		return b.String()
	}

	for _, hw := range page.Homeworks {
		if hw.Name == nil || hw.Status == nil {
			b.WriteString("• запись без имени или статуса\n")
			continue
		}
		verdict, ok := review.Verdicts[*hw.Status]
		if !ok {
			verdict = fmt.Sprintf("статус вне каталога: %q", *hw.Status)
		}
		b.WriteString(fmt.Sprintf("• %s: %s\n", *hw.Name, verdict))
	}

	b.WriteString(fmt.Sprintf("\nВсего работ: %d", len(page.Homeworks)))
	return b.String()
}

// FormatFault renders an internal failure into the user-facing fault message.
func FormatFault(err error) string {
	return fmt.Sprintf("Ошибка у бота %v", err)
}
