package usecases

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// summaryOrFallback keeps citizen-facing messages readable when the intake
// form arrived without a summary.
func summaryOrFallback(summary string) string {
	if summary == "" {
		return "Talebiniz"
	}
	return summary
}

func inProgressMessage(summary string) string {
	return fmt.Sprintf("⚙️ Değerli Vatandaşımız, %q konulu talebiniz işleme alınmış olup ilgili saha ekiplerimize yönlendirilmiştir. 👷‍♂️ Çalışmalarımız devam etmektedir.", summaryOrFallback(summary))
}

func resolvedMessage(summary string, createdAt time.Time) string {
	return fmt.Sprintf("✅ Değerli Vatandaşımız, %s tarihinde belediyemize ilettiğiniz %q konulu şikayetiniz çözüme kavuşmuştur. 🎉 Bilgilerinize sunarız.", createdAt.Format("02.01.2006"), summaryOrFallback(summary))
}

func statusAuditDescription(ticketID uint, status string) string {
	return fmt.Sprintf("Talep #%d durumu %q olarak güncellendi.", ticketID, status)
}

func resolveAuditDescription(ticketID uint, hasEvidence bool) string {
	if hasEvidence {
		return fmt.Sprintf("Talep #%d çözüldü. (Kanıt Fotoğrafı Eklendi)", ticketID)
	}
	return fmt.Sprintf("Talep #%d çözüldü. (Kanıt Fotoğrafı Yok)", ticketID)
}

func assignAuditDescription(ticketID uint, assigneeName string) string {
	return fmt.Sprintf("Talep #%d, %s adlı personele atandı.", ticketID, assigneeName)
}

func createAuditDescription(ticketID uint) string {
	return fmt.Sprintf("Talep #%d oluşturuldu.", ticketID)
}

func deleteAuditDescription(ticketID uint) string {
	return fmt.Sprintf("Talep #%d silindi.", ticketID)
}

func evidenceAuditDescription(ticketID uint) string {
	return fmt.Sprintf("Talep #%d için kanıt fotoğrafı eklendi.", ticketID)
}

// assigneeDisplayName falls back to the raw id when the profile lookup
// returned nothing, so the audit line never loses the target entirely.
func assigneeDisplayName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id.String()
}
