package sim

import (
	"testing"
)

var benchTemplate = Template{"ts1", "three stable patterns", [][]int{
	{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3},
}}

func benchSimulation(b *testing.B, maxSteps int) (*Simulation, chan Status) {
	o := DefaultOptions
	o.Width = 200
	o.Height = 200
	o.Interval = 0
	o.MaxSteps = maxSteps
	o.Seed = 1
	stateCh := make(chan Status, 10)
	s, err := NewSimulation(&o, stateCh)
	if err != nil {
		b.Fatal(err)
	}
	s.AddTemplate(benchTemplate)
	return s, stateCh
}

func Benchmark_Step(b *testing.B) {
	s, stateCh := benchSimulation(b, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		if err := s.SettleTemplate("ts1"); err != nil {
			b.Fatal(err)
		}
		<-stateCh //wait for the reseed to land
		b.StartTimer()
		s.Step()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateManual {
				break
			}
		}
	}
	s.Close()
	close(stateCh)
}

func Benchmark_Run(b *testing.B) {
	s, stateCh := benchSimulation(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		if err := s.SettleTemplate("ts1"); err != nil {
			b.Fatal(err)
		}
		<-stateCh //wait for the reseed to land
		b.StartTimer()
		s.Run()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateFinished {
				break
			}
		}
	}
	s.Close()
	close(stateCh)
}
