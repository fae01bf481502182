package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"bancohoras_backend/internals/features/horas/resumos/service"
)

// StartResumoScheduler materializa diariamente o resumo do dia anterior,
// para que relatórios de dashboard não dependam de alguém clicar "gerar".
// Concorrência com uma geração manual do mesmo dia é responsabilidade do
// operador; o serviço em si não trava datas.
func StartResumoScheduler(db *gorm.DB) {
	if os.Getenv("RESUMO_SCHEDULER_DISABLED") == "true" {
		log.Println("[RESUMO] Scheduler desabilitado via env")
		return
	}

	go func() {
		// Intervalo em horas (default: 24)
		intervalo := 24
		if val := os.Getenv("RESUMO_SCHEDULER_INTERVALO_HORAS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalo = parsed
			}
		}

		svc := service.NewResumoService(service.NewGormStore(db))

		for {
			ontem := time.Now().UTC().AddDate(0, 0, -1)
			log.Printf("[RESUMO] Materializando resumos de %s...", ontem.Format("02/01/2006"))

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			criados, err := svc.GerarResumoDia(ctx, ontem)
			cancel()

			if err != nil {
				log.Printf("[RESUMO ERROR] Falha na materialização: %v", err)
			} else {
				log.Printf("[RESUMO] Concluído, %d resumos criados", criados)
			}

			time.Sleep(time.Duration(intervalo) * time.Hour)
		}
	}()
}
