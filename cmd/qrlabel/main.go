// cmd/qrlabel — renders the QR label PNG for a seeded product.
// Usage: go run ./cmd/qrlabel -id 1 -out label.png [-size 256]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/qr"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/seed"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

func main() {
	id := flag.String("id", "", "product id")
	out := flag.String("out", "label.png", "output PNG path")
	size := flag.Int("size", qr.DefaultPNGSize, "PNG edge length in pixels")
	flag.Parse()

	if *id == "" {
		log.Fatal("missing -id")
	}

	st := store.New()
	if err := seed.Load(st); err != nil {
		log.Fatalf("seed store: %v", err)
	}

	p, ok := st.Product(*id)
	if !ok {
		log.Fatalf("product %q not found in fixtures", *id)
	}

	payload, err := qr.EncodePayload(&p)
	if err != nil {
		log.Fatalf("encode payload: %v", err)
	}
	png, err := qr.EncodePNG(payload, *size)
	if err != nil {
		log.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(*out, png, 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("wrote %s (%d bytes) for %s\n", *out, len(png), p.Name)
}
