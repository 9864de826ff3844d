package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-tracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Printf("Tracer Web Server")
	log.Printf("POST a scene to http://localhost:%d/api/render?width=400&height=400", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
