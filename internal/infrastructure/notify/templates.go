package notify

import "fmt"

// Plantillas de mensaje al cliente. El texto se mantiene idéntico al que los
// clientes ya reciben.

func repairReadyMessage(customerName, device, code string) string {
	return fmt.Sprintf(
		"¡Hola %s! 👋\n\n"+
			"Su %s está listo para retirar. ✅\n\n"+
			"📋 Código: %s\n"+
			"🕐 Horario: Lunes a Viernes 9am-6pm\n\n"+
			"¡Gracias por confiar en nosotros!",
		customerName, device, code)
}

func repairDeliveredMessage(customerName, device string, warrantyDays int) string {
	return fmt.Sprintf(
		"¡Gracias %s! 🙏\n\n"+
			"Su %s ha sido entregado.\n\n"+
			"🛡️ Garantía: %d días\n"+
			"📞 Cualquier problema, contáctenos.\n\n"+
			"¡Que disfrute su equipo!",
		customerName, device, warrantyDays)
}
