package service

import (
	"fmt"
	"testing"
)

func TestRotateEmptyQueueIsNoop(t *testing.T) {
	q := openQueue(t)

	if _, ok := q.Rotate(); ok {
		t.Fatal("rotar una cola vacía tenía que ser no-op")
	}
	if !q.IsOpen() {
		t.Fatal("el no-op no puede tocar el candado")
	}
	if entries, _ := q.List(); len(entries) != 0 {
		t.Fatal("el no-op no puede tocar la cola")
	}
}

func TestRotateAllDefaultSmallQueue(t *testing.T) {
	q := openQueue(t)
	for i := 1; i <= 3; i++ {
		q.Join(member(fmt.Sprint(i)))
	}

	res, ok := q.Rotate()
	if !ok {
		t.Fatal("había gente para rotar")
	}
	if len(res.Advancing) != 3 || res.Remaining != 0 {
		t.Fatalf("cola chica sin priority: advancing=%d remaining=%d", len(res.Advancing), res.Remaining)
	}
	for i, p := range res.Advancing {
		if p.Key() != member(fmt.Sprint(i+1)).Key() {
			t.Fatalf("advancing fuera de orden de llegada en %d: %s", i, p.Key())
		}
	}
}

// Seis en cola, priority en las posiciones 3 y 5: la tanda es
// [3, 5, 1, 2] y el recorte es posicional, así que quedan los que
// estaban en las posiciones 5 y 6 — sí, el 5 sale Y queda. Heredado.
func TestRotatePositionalCutDivergesFromBatch(t *testing.T) {
	q := openQueue(t)
	q.Join(member("1"))
	q.Join(member("2"))
	q.Join(subMember("3"))
	q.Join(member("4"))
	q.Join(subMember("5"))
	q.Join(member("6"))

	res, ok := q.Rotate()
	if !ok {
		t.Fatal("había gente para rotar")
	}

	wantAdvancing := []string{subMember("3").Key(), subMember("5").Key(), member("1").Key(), member("2").Key()}
	if len(res.Advancing) != len(wantAdvancing) {
		t.Fatalf("advancing: %d entradas", len(res.Advancing))
	}
	for i, p := range res.Advancing {
		if p.Key() != wantAdvancing[i] {
			t.Fatalf("advancing[%d] = %s, esperaba %s", i, p.Key(), wantAdvancing[i])
		}
	}

	if res.Remaining != 2 {
		t.Fatalf("remaining = %d, esperaba 2", res.Remaining)
	}
	entries, _ := q.List()
	if entries[0].P.Key() != subMember("5").Key() || entries[1].P.Key() != member("6").Key() {
		t.Fatalf("el recorte es posicional: quedan los de las posiciones 5 y 6, vino %+v", entries)
	}
}

func TestRotatePriorityCap(t *testing.T) {
	q := openQueue(t)
	for i := 1; i <= 4; i++ {
		q.Join(subMember(fmt.Sprint(i)))
	}
	q.Join(member("5"))

	res, _ := q.Rotate()
	// sólo dos asientos priority; el resto se llena por orden de llegada
	want := []string{subMember("1").Key(), subMember("2").Key(), subMember("3").Key(), subMember("4").Key()}
	for i, p := range res.Advancing {
		if p.Key() != want[i] {
			t.Fatalf("advancing[%d] = %s, esperaba %s", i, p.Key(), want[i])
		}
	}
	if res.Remaining != 1 {
		t.Fatalf("remaining = %d", res.Remaining)
	}
}

func TestRotateShortQueueWithLatePriority(t *testing.T) {
	q := openQueue(t)
	q.Join(member("1"))
	q.Join(member("2"))
	q.Join(subMember("3"))

	res, _ := q.Rotate()
	want := []string{subMember("3").Key(), member("1").Key(), member("2").Key()}
	for i, p := range res.Advancing {
		if p.Key() != want[i] {
			t.Fatalf("advancing[%d] = %s, esperaba %s", i, p.Key(), want[i])
		}
	}
	if res.Remaining != 0 {
		t.Fatal("cola más corta que la tanda: se consume entera")
	}
}
