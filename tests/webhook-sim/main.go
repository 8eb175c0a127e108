// webhook-sim отправляет подписанные вебхуки hosted-провайдера в локальный сервис.
// Одно и то же событие уходит несколько раз параллельно, как при повторной доставке.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/gateway"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type transaction struct {
	Reference       string `json:"reference"`
	Status          string `json:"status"`
	Amount          int64  `json:"amount"`
	GatewayResponse string `json:"gateway_response"`
	PaidAt          string `json:"paid_at,omitempty"`
}

type event struct {
	Event string      `json:"event"`
	Data  transaction `json:"data"`
}

func main() {
	_ = godotenv.Load()

	var (
		url       = flag.String("url", "http://localhost:8080/webhook", "webhook endpoint")
		reference = flag.String("reference", "", "payment reference returned by /order/pay")
		status    = flag.String("status", "success", "success | failed | abandoned")
		amount    = flag.String("amount", "0", "order total in major units")
		copies    = flag.Int("copies", 3, "how many times the same event is delivered concurrently")
		interval  = flag.Duration("interval", 0, "repeat the burst every interval until interrupted")
	)
	flag.Parse()

	if *reference == "" {
		log.Fatal("-reference is required")
	}
	total, err := decimal.NewFromString(*amount)
	if err != nil {
		log.Fatalf("bad amount: %v", err)
	}

	signer := gateway.NewSigner(os.Getenv("HOSTED_WEBHOOK_SECRET"))
	client := &http.Client{Timeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	burst := func() {
		body, err := json.Marshal(newEvent(*reference, *status, total))
		if err != nil {
			log.Fatalf("failed to marshal event: %v", err)
		}
		signature := signer.Sign(body)

		var wg sync.WaitGroup
		for i := range *copies {
			wg.Go(func() {
				send(ctx, client, *url, body, signature, i)
			})
		}
		wg.Wait()
	}

	burst()
	if *interval <= 0 {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			burst()
		case <-ctx.Done():
			return
		}
	}
}

func newEvent(reference, status string, total decimal.Decimal) event {
	ev := event{
		Event: "charge.failed",
		Data: transaction{
			Reference:       reference,
			Status:          status,
			Amount:          total.Shift(2).Round(0).IntPart(),
			GatewayResponse: "Declined",
		},
	}
	if status == "success" {
		ev.Event = "charge.success"
		ev.Data.GatewayResponse = "Approved"
		ev.Data.PaidAt = time.Now().UTC().Format(time.RFC3339)
	}
	return ev
}

func send(ctx context.Context, client *http.Client, url string, body []byte, signature string, n int) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("#%d failed to build request: %v", n, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(gateway.SignatureHeader, signature)

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("#%d request failed: %v", n, err)
		return
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("#%d %d %s\n", n, resp.StatusCode, bytes.TrimSpace(out))
}
