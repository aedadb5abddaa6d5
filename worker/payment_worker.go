package worker

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/shopspring/decimal"

    "payment-authorizenet-api/config"
    "payment-authorizenet-api/database"
    "payment-authorizenet-api/queue"
    "payment-authorizenet-api/services/email"
    "payment-authorizenet-api/services/payment"
    "payment-authorizenet-api/services/payment/responsecodes"
)

// Worker handles background charge and profile cleanup jobs.
type Worker struct {
    queue          *queue.Queue
    db             *database.Connection
    paymentService *payment.Service
    mailer         email.EmailSender
    shutdown       chan struct{}
    isRunning      bool
}

func NewWorker(q *queue.Queue, db *database.Connection, ps *payment.Service, mailer email.EmailSender) *Worker {
    return &Worker{
        queue:          q,
        db:             db,
        paymentService: ps,
        mailer:         mailer,
        shutdown:       make(chan struct{}),
    }
}

// Start begins processing jobs
func (w *Worker) Start(concurrency int) {
    w.isRunning = true

    for i := 0; i < concurrency; i++ {
        go w.processJobs(i)
    }
    go w.moveDelayedJobs()

    log.Printf("Started %d worker goroutines", concurrency)
}

// Stop signals the worker to stop processing jobs
func (w *Worker) Stop() {
    if !w.isRunning {
        return
    }

    log.Println("Stopping worker...")
    close(w.shutdown)
    w.isRunning = false
}

func (w *Worker) moveDelayedJobs() {
    ticker := time.NewTicker(10 * time.Second)
    defer ticker.Stop()

    for {
        select {
        case <-w.shutdown:
            return
        case <-ticker.C:
            ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
            if err := w.queue.ProcessDelayedJobs(ctx); err != nil {
                log.Printf("Error moving delayed jobs: %v", err)
            }
            cancel()
        }
    }
}

// processJobs continuously processes jobs from the queue
func (w *Worker) processJobs(workerID int) {
    log.Printf("Worker %d starting", workerID)

    for {
        select {
        case <-w.shutdown:
            log.Printf("Worker %d shutting down", workerID)
            return
        default:
            ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
            job, err := w.queue.Dequeue(ctx, 5*time.Second)
            cancel()

            if err != nil {
                log.Printf("Worker %d: Error dequeuing job: %v", workerID, err)
                time.Sleep(time.Second)
                continue
            }

            if job == nil {
                time.Sleep(100 * time.Millisecond)
                continue
            }

            log.Printf("Worker %d processing job %s of type %s", workerID, job.ID, job.Type)

            jobErr := w.processJob(job)
            if jobErr != nil {
                log.Printf("Worker %d: Error processing job %s: %v", workerID, job.ID, jobErr)

                ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
                failErr := w.queue.FailJob(ctx, job, jobErr)
                cancel()

                if failErr != nil {
                    log.Printf("Worker %d: Error marking job %s as failed: %v", workerID, job.ID, failErr)
                }

                time.Sleep(time.Second)
                continue
            }

            ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
            completeErr := w.queue.CompleteJob(ctx, job)
            cancel()

            if completeErr != nil {
                log.Printf("Worker %d: Error marking job %s as complete: %v", workerID, job.ID, completeErr)
            }
        }
    }
}

func (w *Worker) processJob(job *queue.Job) error {
    switch job.Type {
    case queue.JobTypeChargeProfile:
        return w.processChargeProfile(job)
    case queue.JobTypeDeleteProfile:
        return w.processDeleteProfile(job)
    case queue.JobTypeSendReceipt:
        return w.processSendReceipt(job)
    default:
        return fmt.Errorf("unknown job type: %s", job.Type)
    }
}

func stringField(job *queue.Job, key string) (string, error) {
    value, ok := job.Data[key].(string)
    if !ok || value == "" {
        return "", fmt.Errorf("invalid %s in job data", key)
    }
    return value, nil
}

func (w *Worker) processChargeProfile(job *queue.Job) error {
    reference, err := stringField(job, "account_reference")
    if err != nil {
        return err
    }
    paymentProfileID, err := stringField(job, "payment_profile_id")
    if err != nil {
        return err
    }
    amountStr, err := stringField(job, "amount")
    if err != nil {
        return err
    }
    amount, err := decimal.NewFromString(amountStr)
    if err != nil {
        return fmt.Errorf("invalid amount in job data: %v", err)
    }

    refID, _ := job.Data["ref_id"].(string)

    ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
    defer cancel()

    account, err := w.db.GetAccountByReference(ctx, reference)
    if err != nil {
        return fmt.Errorf("failed to load billing account: %v", err)
    }

    profile, err := w.paymentService.Profile(account)
    if err != nil {
        return fmt.Errorf("failed to build customer profile: %v", err)
    }

    txn, err := profile.ChargeCustomerProfile(ctx, paymentProfileID, amount, refID)
    if err != nil {
        return fmt.Errorf("failed to charge customer profile: %v", err)
    }

    if !txn.Approved() {
        // A declined charge is a final answer; retrying will not change the
        // card's fate. Record it and complete the job.
        if txn.ErrorText != "" {
            return fmt.Errorf("charge did not complete: %s", txn.ErrorText)
        }
        log.Printf("Charge for account %s declined with response code %d",
            reference, txn.Response.ResponseCode)
        return nil
    }

    log.Printf("Charged account %s for %s (transaction %s)",
        reference, amount.StringFixed(2), txn.Response.TransactionID)

    receiptCtx, receiptCancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer receiptCancel()

    err = w.queue.Enqueue(receiptCtx, queue.JobTypeSendReceipt, map[string]interface{}{
        "email":          account.Email,
        "name":           account.DisplayName(),
        "amount":         amount.StringFixed(2),
        "transaction_id": txn.Response.TransactionID,
    })
    if err != nil {
        log.Printf("Warning: Failed to enqueue receipt for account %s: %v", reference, err)
    }

    return nil
}

func (w *Worker) processDeleteProfile(job *queue.Job) error {
    reference, err := stringField(job, "account_reference")
    if err != nil {
        return err
    }

    ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
    defer cancel()

    account, err := w.db.GetAccountByReference(ctx, reference)
    if err != nil {
        return fmt.Errorf("failed to load billing account: %v", err)
    }

    profile, err := w.paymentService.Profile(account)
    if err != nil {
        return fmt.Errorf("failed to build customer profile: %v", err)
    }

    if err := profile.DeleteCustomerProfile(ctx); err != nil {
        return fmt.Errorf("failed to delete customer profile: %v", err)
    }

    log.Printf("Deleted customer profile for account %s", reference)
    return nil
}

func (w *Worker) processSendReceipt(job *queue.Job) error {
    to, err := stringField(job, "email")
    if err != nil {
        return err
    }
    amount, err := stringField(job, "amount")
    if err != nil {
        return err
    }

    name, _ := job.Data["name"].(string)
    transactionID, _ := job.Data["transaction_id"].(string)

    if err := w.mailer.SendReceiptEmail(to, name, amount, transactionID); err != nil {
        return fmt.Errorf("failed to send receipt email: %v", err)
    }

    return nil
}

func StartWorker(cfg *config.Config, concurrency int) (*Worker, error) {
    db, err := database.NewConnection(cfg.Database)
    if err != nil {
        return nil, fmt.Errorf("failed to connect to database: %v", err)
    }

    jobQueue, err := queue.NewQueue(cfg.Redis.URL, "payment_jobs")
    if err != nil {
        return nil, fmt.Errorf("failed to connect to Redis: %v", err)
    }

    codes := responsecodes.NewCachedSource(responsecodes.NewHTTPSource(), jobQueue.Client(), time.Hour)
    paymentService := payment.NewService(
        cfg.AuthNet.APILoginID,
        cfg.AuthNet.TransactionKey,
        cfg.AuthNet.Environment,
        codes,
    )

    mailer := email.NewSMTPService(cfg.SMTP)

    worker := NewWorker(jobQueue, db, paymentService, mailer)
    worker.Start(concurrency)

    return worker, nil
}
