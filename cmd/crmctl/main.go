// Command crmctl is the operator tool for the CRM backend.
//
// Usage:
//
//	crmctl migrate up|down|status [--dsn DSN]
//	crmctl users create --email EMAIL --name NAME [--role ROLE]
//	crmctl users activate|deactivate --email EMAIL
//	crmctl token issue --email EMAIL
//	crmctl notifications purge [--retention-days N]
//
// Configuration is read the same way as the server (CONFIG_PATH or env).
package main

import "github.com/heartmarshall/laborcrm-backend/internal/cli"

func main() {
	cli.Execute()
}
