// Package notify implementa el envío de avisos al cliente por WhatsApp y SMS
// usando la API REST de Twilio. Usa net/http de la librería estándar; no
// requiere el SDK oficial.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/serviceflow/serviceflow-api/internal/application/repairs"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/pkg/config"
	"github.com/serviceflow/serviceflow-api/pkg/logger"
)

// Verificar en tiempo de compilación que TwilioNotifier implementa el puerto.
var _ repairs.Notifier = (*TwilioNotifier)(nil)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// warrantyDays período de garantía informado en el mensaje de entrega.
const warrantyDays = 8

// TwilioNotifier adaptador del puerto repairs.Notifier sobre la Messages API
// de Twilio. Intenta WhatsApp primero y cae a SMS si falla. Con Enabled en
// false (o credenciales vacías) los envíos se simulan en el log.
type TwilioNotifier struct {
	cfg        config.TwilioConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewTwilioNotifier construye el adaptador.
func NewTwilioNotifier(cfg config.TwilioConfig, log *logger.Logger) *TwilioNotifier {
	return &TwilioNotifier{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
		log: log,
	}
}

// RepairReady avisa que el equipo está reparado y listo para retirar.
func (n *TwilioNotifier) RepairReady(ctx context.Context, order *entity.WorkOrder) error {
	msg := repairReadyMessage(order.CustomerName, order.Device, order.Code)
	return n.send(ctx, order.CustomerPhone, msg)
}

// RepairDelivered confirma la entrega e informa el período de garantía.
func (n *TwilioNotifier) RepairDelivered(ctx context.Context, order *entity.WorkOrder) error {
	msg := repairDeliveredMessage(order.CustomerName, order.Device, warrantyDays)
	return n.send(ctx, order.CustomerPhone, msg)
}

// send intenta WhatsApp primero y cae a SMS. Devuelve error solo si ningún
// canal pudo entregar el mensaje.
func (n *TwilioNotifier) send(ctx context.Context, phone, message string) error {
	if phone == "" {
		return fmt.Errorf("notify: número de teléfono vacío")
	}
	if !n.enabled() {
		n.log.Info().
			Str("telefono", phone).
			Str("mensaje", message).
			Msg("[SIMULACION] Notificación no enviada (Twilio deshabilitado)")
		return nil
	}

	phone = normalizePhone(phone)

	waErr := n.sendMessage(ctx, n.cfg.WhatsAppFrom, "whatsapp:"+phone, message)
	if waErr == nil {
		return nil
	}
	n.log.Warn().Err(waErr).Str("telefono", phone).Msg("WhatsApp falló, intentando SMS")

	if n.cfg.SMSFrom == "" {
		return fmt.Errorf("notify: whatsapp falló y no hay número SMS configurado: %w", waErr)
	}
	if smsErr := n.sendMessage(ctx, n.cfg.SMSFrom, phone, message); smsErr != nil {
		return fmt.Errorf("notify: whatsapp (%v) y sms fallaron: %w", waErr, smsErr)
	}
	return nil
}

func (n *TwilioNotifier) enabled() bool {
	return n.cfg.Enabled && n.cfg.AccountSID != "" && n.cfg.AuthToken != ""
}

// sendMessage hace el POST form-encoded a la Messages API de Twilio.
func (n *TwilioNotifier) sendMessage(ctx context.Context, from, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, n.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llamar a Twilio: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("twilio %d: %s (código %d)", resp.StatusCode, apiErr.Message, apiErr.Code)
		}
		return fmt.Errorf("twilio %d: %s", resp.StatusCode, string(raw))
	}

	var ok struct {
		SID string `json:"sid"`
	}
	_ = json.Unmarshal(raw, &ok)
	n.log.Info().
		Str("sid", ok.SID).
		Str("to", to).
		Msg("Mensaje enviado")
	return nil
}

// normalizePhone asegura el prefijo internacional.
func normalizePhone(phone string) string {
	if !strings.HasPrefix(phone, "+") {
		return "+" + phone
	}
	return phone
}
