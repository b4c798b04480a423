package simulation

import (
	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func (w *WorldActor) buildSnapshot() *pb.WorldSnapshot {
	snapshot := &pb.WorldSnapshot{
		Tick:            w.tick,
		Agents:          make([]*pb.AgentState, 0, w.agentCount()),
		ProjectileCount: int32(len(w.projectiles)),
		SessionId:       w.sessionID,
	}

	for fi, f := range w.flocks {
		for i, a := range f.Agents() {
			snapshot.Agents = append(snapshot.Agents, AgentToProto(fi, i, a))
			if a.IsDead() {
				snapshot.DeadCount++
			} else {
				snapshot.AliveCount++
			}
		}
	}
	return snapshot
}

// AgentToProto converts an agent into its wire form.
func AgentToProto(flockIndex, index int, a *flock.Agent) *pb.AgentState {
	return &pb.AgentState{
		Flock:    int32(flockIndex),
		Index:    int32(index),
		Position: VectorToProto(a.Position()),
		Velocity: VectorToProto(a.Velocity()),
		Dead:     a.IsDead(),
	}
}

func VectorToProto(v geometry.Vector3D) *pb.Vector3 {
	return &pb.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// vectorFromProto reads an optional vector field, nil being the origin.
func vectorFromProto(v *pb.Vector3) geometry.Vector3D {
	return geometry.Vector3D{X: v.GetX(), Y: v.GetY(), Z: v.GetZ()}
}
