package repotypes

// Keys of the configuracoes table.
const (
	KeyLogPath    = "caminho_logs"
	KeyBufferCap  = "max_logs_memoria"
	KeyAlertRules = "alertas_config"
)
