// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package capacity_snapshot_test

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xyproto/randomstring"
	"go.uber.org/mock/gomock"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot/leaf_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/queue_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/queue_info/mock_queue_info"
)

const tolerance = 1e-9

func newQueue(name string, kind queue_info.QueueKind, label string, capacity, used, maximum float64) *queue_info.QueueInfo {
	queue := queue_info.NewQueueInfo(name, kind)
	queue.Capacities().SetCapacities(label, queue_info.Capacities{
		Capacity:        capacity,
		UsedCapacity:    used,
		MaximumCapacity: maximum,
	})
	return queue
}

type fakeLeafBuilder struct {
	calls     []string
	snapshots map[string]*capacity_snapshot.QueueSnapshot
	err       error
}

func (f *fakeLeafBuilder) BuildLeafSnapshot(queue queue_info.Queue, label string) (*capacity_snapshot.QueueSnapshot, error) {
	f.calls = append(f.calls, queue.GetQueueName())
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshots[queue.GetQueueName()], nil
}

type fakeRecorder struct {
	builds    int
	failures  int
	snapshots []*capacity_snapshot.QueueSnapshot
}

func (f *fakeRecorder) ObserveBuild(_ string, _ time.Duration, err error) {
	f.builds++
	if err != nil {
		f.failures++
	}
}

func (f *fakeRecorder) RecordSnapshot(_ string, snapshot *capacity_snapshot.QueueSnapshot) {
	f.snapshots = append(f.snapshots, snapshot)
}

// buildRandomTree builds a parent root queue with random descendants up to
// the given depth, random fan-out and random names. Every queue has
// capacities for the default label.
func buildRandomTree(rng *rand.Rand, name string, depth int) *queue_info.QueueInfo {
	root := newQueue(name, queue_info.ParentQueueKind, "", rng.Float64(), rng.Float64(), rng.Float64()*2)
	addRandomChildren(rng, root, depth)
	return root
}

func buildRandomQueue(rng *rand.Rand, name string, depth int) *queue_info.QueueInfo {
	if depth == 0 || rng.Intn(4) == 0 {
		leaf := newQueue(name, queue_info.LeafQueueKind, "", rng.Float64(), rng.Float64(), rng.Float64()*2)
		leaf.SetLeafQueueStats(queue_info.LeafQueueStats{NumApplications: rng.Intn(10)})
		return leaf
	}
	parent := newQueue(name, queue_info.ParentQueueKind, "", rng.Float64(), rng.Float64(), rng.Float64()*2)
	addRandomChildren(rng, parent, depth)
	return parent
}

func addRandomChildren(rng *rand.Rand, parent *queue_info.QueueInfo, depth int) {
	numChildren := rng.Intn(4)
	for i := 0; i < numChildren; i++ {
		childName := fmt.Sprintf("%s.%d-%s", parent.GetQueueName(), i, randomstring.HumanFriendlyEnglishString(6))
		parent.AddChildQueue(buildRandomQueue(rng, childName, depth-1))
	}
}

func expectIsomorphic(snapshot *capacity_snapshot.QueueSnapshot, queue queue_info.Queue) {
	Expect(snapshot.QueueName).To(Equal(queue.GetQueueName()))
	Expect(snapshot.MaxCapacity).To(BeNumerically(">", 0))
	Expect(snapshot.MaxCapacity).To(BeNumerically("<=", 100))
	Expect(snapshot.Queues).NotTo(BeNil())
	if queue.IsLeafQueue() {
		Expect(snapshot.Queues).To(BeEmpty())
		Expect(snapshot.Leaf).NotTo(BeNil())
		return
	}
	Expect(snapshot.Leaf).To(BeNil())
	children := queue.GetChildQueues()
	Expect(snapshot.Queues).To(HaveLen(len(children)))
	for i, child := range children {
		expectIsomorphic(snapshot.Queues[i], child)
	}
}

var _ = Describe("Builder", func() {
	var builder *capacity_snapshot.Builder

	BeforeEach(func() {
		builder = capacity_snapshot.New(leaf_info.New())
	})

	Context("root with a composite child", func() {
		It("matches the expected snapshot for the default label", func() {
			root := newQueue("root", queue_info.ParentQueueKind, constants.DefaultNodeLabel, 1.0, 0.3, 0.0)
			root.AddChildQueue(newQueue("default", queue_info.ParentQueueKind, constants.DefaultNodeLabel, 0.5, 0.2, 0.6))

			snapshot, err := builder.BuildSnapshot(root, constants.DefaultNodeLabel)
			Expect(err).NotTo(HaveOccurred())

			Expect(snapshot.QueueName).To(Equal("root"))
			Expect(snapshot.Capacity).To(BeNumerically("~", 100, tolerance))
			Expect(snapshot.UsedCapacity).To(BeNumerically("~", 30, tolerance))
			Expect(snapshot.MaxCapacity).To(BeNumerically("~", 100, tolerance))
			Expect(snapshot.Leaf).To(BeNil())
			Expect(snapshot.Queues).To(HaveLen(1))

			child := snapshot.Queues[0]
			Expect(child.QueueName).To(Equal("default"))
			Expect(child.Capacity).To(BeNumerically("~", 50, tolerance))
			Expect(child.UsedCapacity).To(BeNumerically("~", 20, tolerance))
			Expect(child.MaxCapacity).To(BeNumerically("~", 60, tolerance))
			Expect(child.Queues).NotTo(BeNil())
			Expect(child.Queues).To(BeEmpty())
		})
	})

	DescribeTable("maximum capacity normalization",
		func(rawMaximum, expectedMaxCapacity float64) {
			root := newQueue("root", queue_info.ParentQueueKind, "", 1, 0, rawMaximum)
			snapshot, err := builder.BuildSnapshot(root, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.MaxCapacity).To(BeNumerically("~", expectedMaxCapacity, tolerance))
		},
		Entry("unset maximum", 0.0, 100.0),
		Entry("maximum below epsilon", 1e-9, 100.0),
		Entry("negative maximum", -0.5, 100.0),
		Entry("maximum at epsilon is kept", 1e-8, 1e-6),
		Entry("maximum above full capacity", 1.5, 100.0),
		Entry("full maximum", 1.0, 100.0),
		Entry("regular maximum", 0.4, 40.0),
	)

	DescribeTable("percentage scaling",
		func(capacity, used float64) {
			root := newQueue("root", queue_info.ParentQueueKind, "GPU", capacity, used, 1)
			snapshot, err := builder.BuildSnapshot(root, "GPU")
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Capacity).To(BeNumerically("~", capacity*100, tolerance))
			Expect(snapshot.UsedCapacity).To(BeNumerically("~", used*100, tolerance))
		},
		Entry("zero", 0.0, 0.0),
		Entry("fractions", 0.125, 0.7),
		Entry("full", 1.0, 1.0),
	)

	It("keeps the children order and shape of random trees", func() {
		rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
		for i := 0; i < 20; i++ {
			root := buildRandomTree(rng, "root", 5)
			snapshot, err := builder.BuildSnapshot(root, "")
			Expect(err).NotTo(HaveOccurred())
			expectIsomorphic(snapshot, root)
		}
	})

	It("builds a leaf root like a queue without children", func() {
		root := newQueue("root", queue_info.LeafQueueKind, "", 1, 0.25, 0)
		root.SetLeafQueueStats(queue_info.LeafQueueStats{NumApplications: 4})
		leafBuilder := &fakeLeafBuilder{}

		snapshot, err := capacity_snapshot.New(leafBuilder).BuildSnapshot(root, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.QueueName).To(Equal("root"))
		Expect(snapshot.UsedCapacity).To(BeNumerically("~", 25, tolerance))
		Expect(snapshot.MaxCapacity).To(BeNumerically("~", 100, tolerance))
		Expect(snapshot.Leaf).To(BeNil())
		Expect(snapshot.Queues).NotTo(BeNil())
		Expect(snapshot.Queues).To(BeEmpty())
		Expect(leafBuilder.calls).To(BeEmpty())
	})

	It("delegates leaf queues to the leaf builder without recursing into them", func() {
		ctrl := gomock.NewController(GinkgoT())
		leaf := mock_queue_info.NewMockQueue(ctrl)
		leaf.EXPECT().IsLeafQueue().Return(true).AnyTimes()
		leaf.EXPECT().GetQueueName().Return("leaf").AnyTimes()

		root := mock_queue_info.NewMockQueue(ctrl)
		root.EXPECT().GetQueueName().Return("root").AnyTimes()
		root.EXPECT().GetUsedCapacity("").Return(0.0, nil)
		root.EXPECT().GetCapacity("").Return(1.0, nil)
		root.EXPECT().GetMaximumCapacity("").Return(1.0, nil)
		root.EXPECT().GetChildQueues().Return([]queue_info.Queue{leaf})

		leafSnapshot := &capacity_snapshot.QueueSnapshot{QueueName: "leaf", Queues: []*capacity_snapshot.QueueSnapshot{}}
		leafBuilder := &fakeLeafBuilder{snapshots: map[string]*capacity_snapshot.QueueSnapshot{"leaf": leafSnapshot}}

		snapshot, err := capacity_snapshot.New(leafBuilder).BuildSnapshot(root, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(leafBuilder.calls).To(Equal([]string{"leaf"}))
		Expect(snapshot.Queues).To(HaveLen(1))
		Expect(snapshot.Queues[0]).To(BeIdenticalTo(leafSnapshot))
	})

	It("fails when the leaf builder returns no snapshot", func() {
		root := newQueue("root", queue_info.ParentQueueKind, "", 1, 0, 1)
		root.AddChildQueue(newQueue("leaf", queue_info.LeafQueueKind, "", 1, 0, 1))

		snapshot, err := capacity_snapshot.New(&fakeLeafBuilder{}).BuildSnapshot(root, "")
		Expect(snapshot).To(BeNil())
		Expect(errors.Is(err, common_info.ErrInvalidQueueReference)).To(BeTrue())
		Expect(common_info.FailedQueueName(err)).To(Equal("leaf"))
	})

	Context("invalid queue references", func() {
		It("fails on a nil root", func() {
			snapshot, err := builder.BuildSnapshot(nil, "")
			Expect(snapshot).To(BeNil())
			Expect(errors.Is(err, common_info.ErrInvalidQueueReference)).To(BeTrue())
		})

		It("fails on a typed nil root", func() {
			var root *queue_info.QueueInfo
			snapshot, err := builder.BuildSnapshot(root, "")
			Expect(snapshot).To(BeNil())
			Expect(errors.Is(err, common_info.ErrInvalidQueueReference)).To(BeTrue())
		})

		It("fails on a nil child and names its parent", func() {
			ctrl := gomock.NewController(GinkgoT())
			root := mock_queue_info.NewMockQueue(ctrl)
			root.EXPECT().GetQueueName().Return("root").AnyTimes()
			root.EXPECT().GetUsedCapacity("").Return(0.0, nil)
			root.EXPECT().GetCapacity("").Return(1.0, nil)
			root.EXPECT().GetMaximumCapacity("").Return(1.0, nil)
			root.EXPECT().GetChildQueues().Return([]queue_info.Queue{nil})

			snapshot, err := builder.BuildSnapshot(root, "")
			Expect(snapshot).To(BeNil())
			Expect(errors.Is(err, common_info.ErrInvalidQueueReference)).To(BeTrue())
			Expect(common_info.FailedQueueName(err)).To(Equal("root"))
		})

		It("fails on a nil scheduler", func() {
			var tree *queue_info.QueueTree
			snapshot, err := builder.BuildSchedulerSnapshot(tree, "")
			Expect(snapshot).To(BeNil())
			Expect(errors.Is(err, common_info.ErrInvalidQueueReference)).To(BeTrue())
		})
	})

	Context("unknown labels", func() {
		It("fails without partial output when a descendant lacks the label", func() {
			root := newQueue("root", queue_info.ParentQueueKind, "GPU", 1, 0, 1)
			parent := newQueue("parent", queue_info.ParentQueueKind, "GPU", 1, 0, 1)
			parent.AddChildQueue(newQueue("leaf", queue_info.LeafQueueKind, "", 1, 0, 1))
			root.AddChildQueue(parent)

			snapshot, err := builder.BuildSnapshot(root, "GPU")
			Expect(snapshot).To(BeNil())
			Expect(errors.Is(err, common_info.ErrUnknownLabel)).To(BeTrue())
			Expect(common_info.FailedQueueName(err)).To(Equal("leaf"))
		})

		It("fails when the label is configured nowhere in the tree", func() {
			root := newQueue("root", queue_info.ParentQueueKind, "", 1, 0, 1)
			root.AddChildQueue(newQueue("default", queue_info.LeafQueueKind, "", 1, 0, 1))

			snapshot, err := builder.BuildSnapshot(root, "FPGA")
			Expect(snapshot).To(BeNil())
			Expect(errors.Is(err, common_info.ErrUnknownLabel)).To(BeTrue())
			Expect(common_info.FailedQueueName(err)).To(Equal("root"))
		})

		It("asks the scheduler before reading any queue", func() {
			ctrl := gomock.NewController(GinkgoT())
			scheduler := mock_queue_info.NewMockScheduler(ctrl)
			scheduler.EXPECT().HasNodeLabel("FPGA").Return(false)

			snapshot, err := builder.BuildSchedulerSnapshot(scheduler, "FPGA")
			Expect(snapshot).To(BeNil())
			Expect(errors.Is(err, common_info.ErrUnknownLabel)).To(BeTrue())
		})

		It("propagates lookup errors unchanged", func() {
			lookupErr := errors.New("capacities store unavailable")
			ctrl := gomock.NewController(GinkgoT())
			root := mock_queue_info.NewMockQueue(ctrl)
			root.EXPECT().GetQueueName().Return("root").AnyTimes()
			root.EXPECT().GetUsedCapacity("").Return(0.0, lookupErr)

			_, err := builder.BuildSnapshot(root, "")
			Expect(errors.Is(err, lookupErr)).To(BeTrue())
		})
	})

	Context("scheduler snapshots", func() {
		var tree *queue_info.QueueTree

		BeforeEach(func() {
			root := newQueue("root", queue_info.ParentQueueKind, "", 1, 0.3, 0)
			root.Capacities().SetCapacities("GPU", queue_info.Capacities{Capacity: 1, UsedCapacity: 0.5})
			leaf := newQueue("team-a", queue_info.LeafQueueKind, "", 0.5, 0.2, 0.6)
			leaf.Capacities().SetCapacities("GPU", queue_info.Capacities{Capacity: 0.25, UsedCapacity: 0.1, MaximumCapacity: 1.5})
			root.AddChildQueue(leaf)

			var err error
			tree, err = queue_info.NewQueueTree(root, []string{"GPU"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("wraps the root snapshot with the scheduler type and label", func() {
			snapshot, err := builder.BuildSchedulerSnapshot(tree, "GPU")
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Type).To(Equal(constants.SchedulerType))
			Expect(snapshot.Label).To(Equal("GPU"))
			Expect(snapshot.QueueName).To(Equal("root"))
			Expect(snapshot.UsedCapacity).To(BeNumerically("~", 50, tolerance))
			Expect(snapshot.Queues).To(HaveLen(1))
			Expect(snapshot.Queues[0].Capacity).To(BeNumerically("~", 25, tolerance))
			Expect(snapshot.Queues[0].MaxCapacity).To(BeNumerically("~", 100, tolerance))
		})

		It("agrees with the aggregate view", func() {
			for _, label := range []string{"", "GPU"} {
				schedulerSnapshot, err := builder.BuildSchedulerSnapshot(tree, label)
				Expect(err).NotTo(HaveOccurred())
				snapshot, err := builder.BuildSnapshot(tree.GetRootQueue(), label)
				Expect(err).NotTo(HaveOccurred())
				Expect(schedulerSnapshot.QueueSnapshot).To(Equal(*snapshot))
			}
		})

		It("reads capacity and maximum from the queue capacities object", func() {
			ctrl := gomock.NewController(GinkgoT())
			capacities := mock_queue_info.NewMockCapacityLookup(ctrl)
			capacities.EXPECT().GetCapacity("GPU").Return(0.5, nil)
			capacities.EXPECT().GetMaximumCapacity("GPU").Return(0.8, nil)

			root := mock_queue_info.NewMockQueue(ctrl)
			root.EXPECT().GetQueueName().Return("root").AnyTimes()
			root.EXPECT().GetQueueCapacities().Return(capacities)
			root.EXPECT().GetUsedCapacity("GPU").Return(0.25, nil)
			root.EXPECT().GetChildQueues().Return(nil)

			scheduler := mock_queue_info.NewMockScheduler(ctrl)
			scheduler.EXPECT().HasNodeLabel("GPU").Return(true)
			scheduler.EXPECT().GetRootQueue().Return(root)

			snapshot, err := builder.BuildSchedulerSnapshot(scheduler, "GPU")
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Capacity).To(BeNumerically("~", 50, tolerance))
			Expect(snapshot.UsedCapacity).To(BeNumerically("~", 25, tolerance))
			Expect(snapshot.MaxCapacity).To(BeNumerically("~", 80, tolerance))
			Expect(snapshot.Queues).NotTo(BeNil())
			Expect(snapshot.Queues).To(BeEmpty())
		})
	})

	It("reports builds to the recorder", func() {
		recorder := &fakeRecorder{}
		builder = capacity_snapshot.New(leaf_info.New(), capacity_snapshot.WithRecorder(recorder))
		root := newQueue("root", queue_info.ParentQueueKind, "", 1, 0, 1)

		_, err := builder.BuildSnapshot(root, "")
		Expect(err).NotTo(HaveOccurred())
		_, err = builder.BuildSnapshot(root, "GPU")
		Expect(err).To(HaveOccurred())

		Expect(recorder.builds).To(Equal(2))
		Expect(recorder.failures).To(Equal(1))
		Expect(recorder.snapshots).To(HaveLen(1))
	})

	It("returns a copy detached from the live tree", func() {
		root := newQueue("root", queue_info.ParentQueueKind, "", 1, 0.3, 0)
		snapshot, err := builder.BuildSnapshot(root, "")
		Expect(err).NotTo(HaveOccurred())

		root.Capacities().SetUsedCapacity("", 0.9)
		root.AddChildQueue(newQueue("late", queue_info.LeafQueueKind, "", 1, 0, 1))

		Expect(snapshot.UsedCapacity).To(BeNumerically("~", 30, tolerance))
		Expect(snapshot.Queues).To(BeEmpty())
	})

	// The builder takes no tree wide lock; concurrent updates may leak into a
	// snapshot at any point, but the snapshot invariants still hold.
	It("builds consistent shapes while the scheduler updates capacities", func() {
		rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
		root := buildRandomTree(rng, "root", 4)
		tree, err := queue_info.NewQueueTree(root, nil)
		Expect(err).NotTo(HaveOccurred())

		var names []string
		snapshot, err := builder.BuildSnapshot(root, "")
		Expect(err).NotTo(HaveOccurred())
		snapshot.Walk(func(s *capacity_snapshot.QueueSnapshot, _ int) {
			names = append(names, s.QueueName)
		})

		stop := make(chan struct{})
		wg := sync.WaitGroup{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			updates := rand.New(rand.NewSource(1))
			for {
				select {
				case <-stop:
					return
				default:
				}
				queue, _ := tree.GetQueue(names[updates.Intn(len(names))])
				queue.Capacities().SetUsedCapacity("", updates.Float64())
				queue.Capacities().SetMaximumCapacity("", updates.Float64()*2)
			}
		}()

		for i := 0; i < 50; i++ {
			snapshot, err := builder.BuildSnapshot(root, "")
			Expect(err).NotTo(HaveOccurred())
			expectIsomorphic(snapshot, root)
		}
		close(stop)
		wg.Wait()
	})
})
