package async_test

import (
	"context"

	"geraetewart-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var broker *async.LocalBroker
	var topic async.BrokerTopicName
	var subscription async.Subscription
	var message async.BrokerMessage
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		ctx = context.TODO()
	})

	Context("Subscribe", func() {
		When("a subscriber exists for a topic", func() {
			BeforeEach(func() {
				topic = "maintenance_runs"
			})

			It("should deliver published messages", func() {
				subscription, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("multiple subscribers exist", func() {
			var subscription2 async.Subscription
			BeforeEach(func() {
				topic = "maintenance_runs"
			})

			It("should deliver to every subscriber", func() {
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
				Eventually(subscription2.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("a new message arrives", func() {
			BeforeEach(func() {
				topic = "maintenance_records"
				subscription, _ = broker.Subscribe(topic)
				message = async.BrokerMessage{
					Event: "record_created",
					Value: "06f8cf24-5a51-4b0a-9e6f-3a0c4174fb11",
				}
			})

			It("should receive the message from the channel", func() {
				broker.Publish(context.TODO(), topic, message)

				Eventually(subscription.Receiver).Should(Receive(And(
					HaveField("Event", "record_created"),
					HaveField("Value", "06f8cf24-5a51-4b0a-9e6f-3a0c4174fb11"),
				)))
			})
		})

		When("the broker is stopped", func() {
			BeforeEach(func() {
				topic = "maintenance_records"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close the receiver channel", func() {
				go broker.Stop()

				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})

		When("the topic doesn't exist", func() {
			BeforeEach(func() {
				topic = "no_such_topic"
			})

			It("should return an error on publish", func() {
				err := broker.Publish(ctx, topic, async.BrokerMessage{})

				Expect(err).To(MatchError(async.ErrTopicNotFound))
			})
		})

		When("unsubscribing", func() {
			BeforeEach(func() {
				topic = "maintenance_runs"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close the subscription channel", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).NotTo(HaveOccurred())
				Eventually(subscription.Receiver).Should(BeClosed())
			})

			It("should fail for an unknown subscription", func() {
				err := broker.Unsubscribe(topic, async.Subscription{ID: "missing"})

				Expect(err).To(MatchError(async.ErrSubscriptorNotFound))
			})
		})
	})
})
