package main

import (
	"flag"
	"log"
	"os"

	wifictl "github.com/dogeorg/wifictl/pkg"
)

func main() {
	var configPath string
	var port int
	var bind string
	var iface string
	var platform string
	var dataDir string
	var historyDB string
	var probeURL string
	var scanInterval int
	var verbose bool
	var help bool

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.IntVar(&port, "port", 8080, "REST API Port")
	flag.StringVar(&bind, "addr", "127.0.0.1", "Address to bind to")
	flag.StringVar(&iface, "iface", "", "Wireless interface to manage (default: first found)")
	flag.StringVar(&platform, "platform", "", "Force a platform backend (linux, windows)")
	flag.StringVar(&dataDir, "data", "./data", "Directory to keep daemon state in")
	flag.StringVar(&historyDB, "history", "", "Path of the sqlite history database (empty: disabled)")
	flag.StringVar(&probeURL, "probe", "", "URL to probe after connecting (empty: disabled)")
	flag.IntVar(&scanInterval, "scan-interval", 0, "Seconds between background scans (0: disabled)")
	flag.BoolVar(&verbose, "v", false, "Be verbose")
	flag.BoolVar(&help, "h", false, "Get help")
	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	config := wifictl.DefaultServerConfig()
	if configPath != "" {
		var err error
		config, err = wifictl.LoadServerConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			config.Port = port
		case "addr":
			config.Bind = bind
		case "iface":
			config.Interface = iface
		case "platform":
			config.Platform = platform
		case "data":
			config.DataDir = dataDir
		case "history":
			config.HistoryDB = historyDB
		case "probe":
			config.ProbeURL = probeURL
		case "scan-interval":
			config.ScanInterval = scanInterval
		case "v":
			config.Verbose = verbose
		}
	})

	srv := Server(config)
	srv.Start()
}
