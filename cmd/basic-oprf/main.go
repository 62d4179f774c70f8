// Command basic-oprf demonstrates the non-verifiable OPRF protocol
// flow between a client and server: setup, blind, evaluate, unblind,
// finalize.
package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/oprfgo/voprf/ciphersuite"
	"github.com/oprfgo/voprf/group"
	"github.com/oprfgo/voprf/oprf"
)

func main() {
	ciph, err := ciphersuite.New(group.Ristretto255(), false)
	if err != nil {
		log.Fatalf("ciphersuite.New: %v", err)
	}
	fmt.Printf("ciphersuite: %s\n", ciph.Name)

	server, err := oprf.NewServer(ciph)
	if err != nil {
		log.Fatalf("NewServer: %v", err)
	}

	client, err := oprf.NewClient(ciph, nil)
	if err != nil {
		log.Fatalf("NewClient: %v", err)
	}

	input := []byte("my secret password")
	blinded, err := client.Blind([][]byte{input})
	if err != nil {
		log.Fatalf("Blind: %v", err)
	}
	fmt.Printf("client: blinded element = %s\n", hex.EncodeToString(ciph.Group.Serialize(blinded[0].Element)))

	eval, err := server.Evaluate([]*group.Element{blinded[0].Element})
	if err != nil {
		log.Fatalf("Evaluate: %v", err)
	}
	fmt.Printf("server: evaluated element = %s\n", hex.EncodeToString(ciph.Group.Serialize(eval.Elements[0])))

	unblinded, err := client.Unblind(blinded, eval)
	if err != nil {
		log.Fatalf("Unblind: %v", err)
	}

	output, err := client.Finalize(input, unblinded[0], nil)
	if err != nil {
		log.Fatalf("Finalize: %v", err)
	}
	fmt.Printf("client: F_K(input) = %s\n", hex.EncodeToString(output))
}
