package main

import (
	"flag"
	"fmt"
	"github.com/caarlos0/env"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/trashformer/rover/drive"
	"github.com/trashformer/rover/drive/hardware"
	"io/ioutil"
	"log"
	"net/http"
	"path/filepath"
	"strings"
)

type EnvConfig struct {
	CONFDIR string `env:"CONFDIR" envDefault:"."`
	HTMLDIR string `env:"HTMLDIR" envDefault:"./web/"`
	DEBUG   bool   `env:"DEBUG" envDefault:"0"`
	Chassis *drive.Coordinator
	SimBus  *hardware.SimulatedPinBus
}

var (
	ENV *EnvConfig
)

func init() {
	ENV = new(EnvConfig)
	env.Parse(ENV)
}

func main() {
	// process flags
	simulated := flag.Bool("sim", false, "Drive a simulated pin bus instead of hardware")
	diag := flag.Bool("diag", false, "Mount the single-wheel wiring test routes")
	port := flag.String("port", "0.0.0.0:80", "Specify the ip:port to listen on")
	flag.Parse()

	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Recoverer) // make sure this is last

	// Bring the chassis up before anything can reach it
	filename, err := filepath.Abs(ENV.CONFDIR + "/rover_config.yaml")
	if err != nil {
		panic(err)
	}
	yamlFile, err := ioutil.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("Unable to read yaml file: %v", err))
	}

	config, err := drive.LoadConfig(yamlFile)
	if err != nil {
		panic(fmt.Sprintf("Unable to load chassis config: %v", err))
	}

	var bus hardware.PinBus
	if *simulated {
		println("Creating simulated pin bus")
		ENV.SimBus = hardware.NewSimulatedPinBus()
		bus = ENV.SimBus
	} else {
		sysfs, err := hardware.NewSysfsPinBus()
		if err != nil {
			panic(fmt.Sprintf("Unable to open pin bus: %v", err))
		}
		bus = sysfs
	}

	chassis, err := drive.NewChassis(config, bus)
	if err != nil {
		panic(fmt.Sprintf("Unable to initialize chassis: %v", err))
	}
	ENV.Chassis = chassis

	// Create a local shell
	go DriveShell(chassis).Start()

	//---
	// Build the command routes
	//---
	DriveRoutes(r)

	if *diag || ENV.DEBUG {
		fmt.Println("Mounting wiring test routes")
		DiagRoutes(r)
	}

	// Add websocket routes
	r.Route("/ws", func(r chi.Router) {
		r.Get("/drive", DriveSocketHandler)
	})

	// add static base routes
	FileServer(r, "/", http.Dir(ENV.HTMLDIR))

	fmt.Println("Listening on port", *port)
	if err := http.ListenAndServe(*port, r); err != nil {
		log.Fatal(err)
	}
}

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	fs := http.StripPrefix(path, http.FileServer(root))

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", 301).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.ServeHTTP(w, r)
	}))
}
