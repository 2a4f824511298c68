package main

import (
	"errors"
	"fmt"
	"io"

	"modemcode-go/drivers/atsms"
	"modemcode-go/drivers/smspdu"
	"modemcode-go/x/logx"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

var errNoDestination = errors.New("--to is required")

func newRootCmd(cfg config, stdout, stderr io.Writer, open opener) *cobra.Command {
	root := &cobra.Command{
		Use:          "smspdu",
		Short:        "SMS PDU encoder",
		Long:         `Encode SMS-SUBMIT PDUs for modems in AT+CMGF=0 mode`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newEncodeCmd(cfg, open))
	return root
}

type encodeOpts struct {
	smsc     string
	to       string
	text     string
	toa      int
	validity string
	device   string
	baud     int
	logLevel string
}

func newEncodeCmd(cfg config, open opener) *cobra.Command {
	o := encodeOpts{logLevel: cfg.LogLevel}
	cmd := &cobra.Command{
		Use:   "encode --to <digits> --text <message>",
		Short: "Encode one message",
		Long: `Encode one message and print the AT+CMGS command and hex PDU.
With --device the PDU-mode selector, command and PDU are written to the port once;
the modem's prompt and reply are not read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEncode(cmd, o, open)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.smsc, "smsc", cfg.SMSC, "service centre digits, empty to use the modem's")
	f.StringVar(&o.to, "to", "", "destination digits")
	f.StringVar(&o.text, "text", "", "message text, at most 160 characters")
	f.IntVar(&o.toa, "toa", smspdu.TOAInternational, "type of address for both numbers")
	f.StringVar(&o.validity, "validity", cfg.Validity.String(), "relative validity period")
	f.StringVar(&o.device, "device", cfg.Device, "serial device to write to")
	f.IntVar(&o.baud, "baud", cfg.Baud, "serial baud rate")
	return cmd
}

func runEncode(cmd *cobra.Command, o encodeOpts, open opener) error {
	logger, err := logx.New(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return err
	}
	if o.to == "" {
		return errNoDestination
	}
	if o.toa < 0 || o.toa > 0xFF {
		return fmt.Errorf("--toa %d out of range", o.toa)
	}
	validity, err := parseValidity(o.validity)
	if err != nil {
		return err
	}

	frame, err := encode(smspdu.ParamsFor(validity, byte(o.toa)), trimPlus(o.smsc), trimPlus(o.to), o.text)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "encoded", "tpdu_len", frame.TPDULen, "pdu", frame.HexString())

	if o.device == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", frame.Command[:len(frame.Command)-1], frame.HexString())
		return nil
	}

	port, err := open(o.device, o.baud)
	if err != nil {
		return err
	}
	defer port.Close()
	n, err := frame.WriteTo(port)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "frame written", "device", o.device, "bytes", n, "tpdu_len", frame.TPDULen)
	return nil
}

func encode(p smspdu.Params, smsc, to, text string) (atsms.Frame, error) {
	pdu := make([]byte, smspdu.EncodedLen(smsc, to, text))
	n, err := smspdu.NewEncoder(p).Encode(pdu, smsc, to, text)
	if err != nil {
		return atsms.Frame{}, err
	}
	return atsms.Render(make([]byte, atsms.FrameLen(n)), pdu[:n])
}
