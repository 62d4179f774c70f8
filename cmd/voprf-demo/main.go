// Command voprf-demo demonstrates the verifiable OPRF protocol: the
// client verifies the server's DLEQ proof before unblinding, using a
// batch of inputs so the batched composite construction is exercised
// rather than the single-point proof.
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
	ciph, err := ciphersuite.New(group.Ristretto255(), true)
	if err != nil {
		log.Fatalf("ciphersuite.New: %v", err)
	}
	fmt.Printf("ciphersuite: %s\n", ciph.Name)

	server, err := oprf.NewServer(ciph)
	if err != nil {
		log.Fatalf("NewServer: %v", err)
	}

	pub, err := server.PublicKey()
	if err != nil {
		log.Fatalf("PublicKey: %v", err)
	}
	fmt.Printf("server: public key = %s\n", hex.EncodeToString(ciph.Group.Serialize(pub)))

	client, err := oprf.NewClient(ciph, pub)
	if err != nil {
		log.Fatalf("NewClient: %v", err)
	}

	inputs := [][]byte{
		[]byte("alice@example.com"),
		[]byte("bob@example.com"),
		[]byte("carol@example.com"),
	}

	blinded, err := client.Blind(inputs)
	if err != nil {
		log.Fatalf("Blind: %v", err)
	}

	elements := make([]*group.Element, len(blinded))
	for i, b := range blinded {
		elements[i] = b.Element
	}

	eval, err := server.Evaluate(elements)
	if err != nil {
		log.Fatalf("Evaluate: %v", err)
	}
	fmt.Printf("server: attached a %d-byte DLEQ proof for %d inputs\n", len(eval.Proof.Encode()), len(inputs))

	unblinded, err := client.Unblind(blinded, eval)
	if err != nil {
		log.Fatalf("Unblind (proof rejected): %v", err)
	}

	for i, input := range inputs {
		out, err := client.Finalize(input, unblinded[i], nil)
		if err != nil {
			log.Fatalf("Finalize: %v", err)
		}
		fmt.Printf("client: F_K(%s) = %s\n", input, hex.EncodeToString(out))
	}
}
