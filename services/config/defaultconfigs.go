package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// The pico boots with a test message to the operator's handset.
const cfgPico = `{
  "modem": {
    "uart": "uart0",
    "baud": 115200,
    "tx": 0,
    "rx": 1,
    "boot_to": "46708251358",
    "boot_text": "hellohello"
  },
  "sms": {
    "smsc": "",
    "toa": 145,
    "validity_minutes": 5760
  }
}`

// The host port is chosen on the smspdu command line.
const cfgHost = `{
  "sms": {
    "smsc": "",
    "toa": 145,
    "validity_minutes": 14400
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
	"host": []byte(cfgHost),
}
